package universe

type Universe interface {
	Status() Status
	Options() Options
	Cells() []Coordinate
	Bounds() (min Coordinate, max Coordinate, ok bool)
	StateCh() chan Status
	AddTemplate(tmpl Template)
	Templates() []Template
	SettleTemplate(name string)
	SettleWithRandomData()
	SpawnRandom(c Coordinate)
	Settle(vc [][]int)
	AddCell(c Coordinate)
	RemoveCell(c Coordinate)
	InverseCell(x int, y int)
	TogglePause()
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}
