package universe

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

//Options represents the Universe's configurable options
type Options struct {
	Width           int     //width of the random seeding block
	Height          int     //height of the random seeding block
	Density         float64 //probability of a cell to be alive in the random seeding block
	Seed            int64   //random seed, 0 seeds from the clock
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	Workers         int                    //shards per step for the parallel engine, 0 uses all CPUs
	Advanced        map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum   int
	RunningMode    RunningState
	LiveCells      int
	CandidateCells int
	Paused         bool
	IterationTime  time.Duration
	Details        map[string]interface{} //advanced details (engine specific)
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//The universe running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 101
	DefHeight             = 100
	DefDensity            = 0.5
	DefMaxSkippedTicks    = 5
	DefCycleHistory       = 8 //generations remembered to detect oscillators
)

const (
	RunningStateManual   = 0x0
	RunningStateStep     = 0x1
	RunningStateRun      = 0x2
	RunningStateFinished = 0x3
)

var DefaultUniverseOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Density:         DefDensity,
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
}

//cycleMark identifies an already seen generation
type cycleMark struct {
	fingerprint uint64
	cells       int
}

//BaseUniverse is the base universe's engine
//implements Universe interface
//can be used to create different implementations by redefining nextIteration func
type BaseUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	board struct {
		*Board
		history []cycleMark
		sync.Mutex
	}
	stateCh       chan Status
	views         []Viewer
	templates     map[string]Template
	rnd           *rand.Rand
	controlCh     chan func()
	closeCh       chan bool
	done          chan struct{}
	closeOnce     sync.Once
	nextIteration func() Transition //called with the board locked
}

//NewBaseUniverse creates the BaseUniverse instance
//the base engine uses the sequential transition
func NewBaseUniverse(o *Options, stateCh chan Status) *BaseUniverse {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	opts := *o
	opts.Advanced = map[string]interface{}{"engine": "sequential"}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	u := BaseUniverse{
		options:   opts,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		done:      make(chan struct{}),
		stateCh:   stateCh,
		templates: map[string]Template{},
		rnd:       rand.New(rand.NewSource(seed)),
	}
	u.board.Board = NewBoard()
	//nextIteration can be implemented by successor
	u.nextIteration = u.board.Step
	u.state.Details = make(map[string]interface{})
	for _, tmpl := range DefaultTemplates() {
		u.AddTemplate(tmpl)
	}

	go u.mainLoop()
	return &u
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (u *BaseUniverse) AddTemplate(tmpl Template) {
	u.templates[tmpl.Name] = tmpl
}

//Templates returns all registered templates sorted by name
func (u *BaseUniverse) Templates() []Template {
	res := make([]Template, 0, len(u.templates))
	for _, t := range u.templates {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

//Settle settles the universe with data
//vc - array of x,y coordinates
func (u *BaseUniverse) Settle(vc [][]int) {
	u.board.Lock()
	u.settle(vc)
	u.board.Unlock()
	u.updateCounters()
	u.refreshView()
}

//SettleTemplate populates the universe with the seeding template
func (u *BaseUniverse) SettleTemplate(name string) {
	tmpl, ok := u.templates[name]
	if !ok {
		return
	}
	u.Settle(tmpl.Coordinates)
}

//SettleWithRandomData clears the universe and populates the block around the origin with random data
func (u *BaseUniverse) SettleWithRandomData() {
	mode := u.runningMode()
	if mode == RunningStateManual || mode == RunningStateFinished {
		u.exec(u.clear)
		u.exec(func() {
			u.edit(func(b *Board) { u.fillRandom(b, C(0, 0)) })
		})
	}
}

//SpawnRandom adds the random block centred on c, the existing cells are kept
//works in any running mode
func (u *BaseUniverse) SpawnRandom(c Coordinate) {
	u.edit(func(b *Board) { u.fillRandom(b, c) })
}

//AddCell makes the cell alive
func (u *BaseUniverse) AddCell(c Coordinate) {
	u.edit(func(b *Board) { b.AddCell(c) })
}

//RemoveCell kills the cell
func (u *BaseUniverse) RemoveCell(c Coordinate) {
	u.edit(func(b *Board) { b.RemoveCell(c) })
}

//InverseCell inverses the cell state at point x, y
func (u *BaseUniverse) InverseCell(x int, y int) {
	c := C(x, y)
	u.edit(func(b *Board) {
		if !b.RemoveCell(c) {
			b.AddCell(c)
		}
	})
}

//TogglePause pauses or resumes the generations, the running mode is not changed
//while paused every tick is skipped
func (u *BaseUniverse) TogglePause() {
	u.board.Lock()
	paused := u.board.TogglePause()
	u.board.Unlock()
	u.state.Lock()
	u.state.Paused = paused
	u.state.Unlock()
	u.refreshView()
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.status()
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	return u.options
}

//Cells returns the snapshot of the alive cells
func (u *BaseUniverse) Cells() []Coordinate {
	u.board.Lock()
	defer u.board.Unlock()
	return u.board.Cells()
}

//Bounds returns the smallest rectangle holding every alive cell, ok is false for an empty universe
func (u *BaseUniverse) Bounds() (min Coordinate, max Coordinate, ok bool) {
	u.board.Lock()
	defer u.board.Unlock()
	return u.board.Bounds()
}

//Run starts the universe simulation, returns immediately
func (u *BaseUniverse) Run() {
	u.exec(u.run)
}

//Stop stops the universe simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (u *BaseUniverse) Stop() {
	u.exec(u.stop)
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *BaseUniverse) Step() {
	u.exec(u.step)
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (u *BaseUniverse) Clear() {
	u.exec(u.clear)
}

//Close stops the main loop, returns immediately
func (u *BaseUniverse) Close() {
	u.closeOnce.Do(func() {
		u.closeCh <- true
	})
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseUniverse) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case c = <-u.closeCh:

		}
	}
	close(u.done)
}

//exec sends the command to the main loop, the command is dropped if the universe is closed
func (u *BaseUniverse) exec(cmd func()) {
	select {
	case u.controlCh <- cmd:
	case <-u.done:
	}
}

//edit applies the change to the board and refreshes counters and views
//any edit breaks the generations history
func (u *BaseUniverse) edit(f func(b *Board)) {
	u.board.Lock()
	f(u.board.Board)
	u.board.history = nil
	u.board.Unlock()
	u.updateCounters()
	u.refreshView()
}

//fillRandom makes alive the cells of the Width x Height block centred on c with Density probability
//should be called with the board locked, the random source is shared
func (u *BaseUniverse) fillRandom(b *Board, c Coordinate) {
	w, h := u.options.Width, u.options.Height
	for y := c.Y - h/2; y < c.Y+h-h/2; y++ {
		for x := c.X - w/2; x < c.X+w-w/2; x++ {
			if u.rnd.Float64() < u.options.Density {
				b.AddCell(C(x, y))
			}
		}
	}
}

//settle makes alive the cells at positions x,y
func (u *BaseUniverse) settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 {
			continue
		}
		u.board.AddCell(C(v[0], v[1]))
	}
	u.board.history = nil
}

//updateCounters copies the board counters to the status
func (u *BaseUniverse) updateCounters() {
	u.board.Lock()
	live, candidates := u.board.CellCount(), u.board.CandidateCount()
	u.board.Unlock()
	u.state.Lock()
	u.state.LiveCells = live
	u.state.CandidateCells = candidates
	u.state.Unlock()
}

//status returns the copy of the status, should be called with the state locked
func (u *BaseUniverse) status() Status {
	st := u.state.Status
	st.Details = make(map[string]interface{}, len(u.state.Details))
	for k, v := range u.state.Details {
		st.Details[k] = v
	}
	return st
}

func (u *BaseUniverse) runningMode() RunningState {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.RunningMode
}

//switchRunningState switch the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *BaseUniverse) switchRunningState(to RunningState) {
	u.notify(u.setRunningState(to))
}

func (u *BaseUniverse) setRunningState(to RunningState) Status {
	u.state.Lock()
	defer u.state.Unlock()
	u.state.RunningMode = to
	return u.status()
}

//notify writes the status to the stateCh
func (u *BaseUniverse) notify(st Status) {
	if u.stateCh != nil {
		u.stateCh <- st
	}
}

//run starts the universe simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (u *BaseUniverse) run() {
	go func() {
		u.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool, 1)
		for {
			mode := u.runningMode()
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > u.options.MaxSkippedTicks {
				u.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the universe is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				select {
				case u.controlCh <- func() {
					u.step()
					done <- true
				}:
				case <-u.done:
					return
				}
				select {
				case <-done:
				case <-u.done:
					return
				}
			} else {
				skipped++
			}
			if u.options.Interval > 0 {
				time.Sleep(u.options.Interval)
			}
		}
	}()
}

//stop stops the universe running cycle
func (u *BaseUniverse) stop() {
	if u.runningMode() == RunningStateRun {
		u.switchRunningState(RunningStateManual)
	}
}

//step does one tick: calculates the next generation unless the board is paused
func (u *BaseUniverse) step() {
	rm := u.runningMode()
	u.board.Lock()
	paused := u.board.IsPaused()
	u.board.Unlock()
	if paused {
		u.switchRunningState(rm)
		return
	}

	finished := false
	//the views are refreshed before the control software is notified
	defer func() {
		to := rm
		if finished {
			to = RunningStateFinished
		}
		st := u.setRunningState(to)
		u.refreshView()
		u.notify(st)
	}()

	u.switchRunningState(RunningStateStep)
	finished = u.advance()

	maxIter := u.options.MaxSteps
	u.state.Lock()
	u.state.IterationNum++
	if maxIter != 0 && u.state.IterationNum >= maxIter {
		finished = true
	}
	u.state.Unlock()
}

//advance calculates the next generation and updates the status
//returns true when the simulation has nothing left to do: the universe is empty, stable or cycling
func (u *BaseUniverse) advance() bool {
	u.board.Lock()
	start := time.Now()
	t := u.nextIteration()
	elapsed := time.Since(start)
	live, candidates := u.board.CellCount(), u.board.CandidateCount()
	period := u.trackCycle()
	u.board.Unlock()

	u.state.Lock()
	u.state.LiveCells = live
	u.state.CandidateCells = candidates
	u.state.IterationTime = elapsed
	u.state.Details["Born"] = t.Born
	u.state.Details["Died"] = t.Died
	if period > 0 {
		u.state.Details["Cycle period"] = period
	} else {
		delete(u.state.Details, "Cycle period")
	}
	u.state.Unlock()

	return live == 0 || !t.Changed() || period > 0
}

//trackCycle remembers the current generation, returns the period if it was seen recently
//should be called with the board locked
func (u *BaseUniverse) trackCycle() (period int) {
	m := cycleMark{u.board.Fingerprint(), u.board.CellCount()}
	h := u.board.history
	for i := len(h) - 1; i >= 0; i-- {
		if h[i] == m {
			period = len(h) - i
			break
		}
	}
	h = append(h, m)
	if len(h) > DefCycleHistory {
		h = h[len(h)-DefCycleHistory:]
	}
	u.board.history = h
	return
}

//clear clears the unvierse data, reset all counters
func (u *BaseUniverse) clear() {
	u.state.Lock()
	u.board.Lock()

	u.state.IterationNum = 0
	u.state.LiveCells = 0
	u.state.CandidateCells = 0
	u.state.IterationTime = 0
	u.state.Details = make(map[string]interface{})
	u.board.Reset()
	u.board.history = nil
	u.state.RunningMode = RunningStateManual
	st := u.status()
	u.board.Unlock()
	u.state.Unlock()
	u.refreshView()
	u.notify(st)
}

//refreshView calls Refresh event for all registered views
func (u *BaseUniverse) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
