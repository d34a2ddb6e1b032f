package main

import (
	"fmt"
	"strings"

	"github.com/integrii/flaggy"
	"infinilife/src/universe"
	"infinilife/src/view"
)

var (
	engines = map[string]func(o *universe.Options, stateCh chan universe.Status) universe.Universe{
		"sequential": func(o *universe.Options, stateCh chan universe.Status) universe.Universe {
			return universe.NewBaseUniverse(o, stateCh)
		},
		"recount":  universe.NewSimpleUniverse,
		"parallel": universe.NewMultithreadedUniverse,
	}
)

type EnvOptions struct {
	interactive bool
	randomData  bool
	engine      string
	template    string
}

func main() {
	eo, uo := initOptions()

	var stateCh chan universe.Status

	if !eo.interactive {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the universe status
	}

	u := engines[eo.engine](uo, stateCh)

	if eo.interactive {
		v := view.NewViewTerminal()
		u.RegisterViewer(v)
		seed(u, eo)
		v.Start()
		u.Close()
		return
	}

	v := view.NewConsoleOut()
	u.RegisterViewer(v)
	seed(u, eo)
	if eo.randomData {
		<-stateCh //clear
	}
	v.Start()
	u.Run()
	for st := range stateCh {
		if st.RunningMode == universe.RunningStateFinished {
			break
		}
	}
	u.Close()
}

func seed(u universe.Universe, eo *EnvOptions) {
	if eo.randomData {
		u.SettleWithRandomData()
	} else {
		u.SettleTemplate(eo.template)
	}
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultUniverseOptions
	uo = &o
	engineNames := make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	templateNames := make([]string, 0)
	for _, t := range universe.DefaultTemplates() {
		templateNames = append(templateNames, t.Name)
	}
	eo = &EnvOptions{engine: "sequential", template: "testSample1"}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of the random seeding area")
	flaggy.Int(&uo.Height, "y", "height", "Height of the random seeding area")
	flaggy.Float64(&uo.Density, "d", "density", "Probability of a cell to be alive in the random seeding area")
	flaggy.Int64(&uo.Seed, "", "seed", "Random seed, 0 seeds from the clock")
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 runs until the universe is stable")
	flaggy.Int(&uo.Workers, "w", "workers", "Workers for the parallel engine, 0 uses all CPUs")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")
	flaggy.String(&eo.template, "t", "template", "Template to settle ["+strings.Join(templateNames, "|")+"]")

	flaggy.Parse()

	if _, ok := engines[eo.engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if !eo.randomData && !hasTemplate(eo.template) {
		flaggy.ShowHelpAndExit(fmt.Sprintf("unknown template %q", eo.template))
	}

	if !eo.interactive {
		flaggy.ShowHelp("")
	}

	return
}

func hasTemplate(name string) bool {
	for _, t := range universe.DefaultTemplates() {
		if t.Name == name {
			return true
		}
	}
	return false
}
