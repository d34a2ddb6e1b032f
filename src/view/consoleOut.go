package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"
	"infinilife/src/universe"
)

//ConsoleOut is the non-interactive viewer, prints the progress to the output
type ConsoleOut struct {
	u         universe.Universe
	out       io.Writer
	startTime time.Time
	lastIter  int
}

func NewConsoleOut() *ConsoleOut {
	return NewConsoleOutTo(os.Stdout)
}

//NewConsoleOutTo creates ConsoleOut writing to w
func NewConsoleOutTo(w io.Writer) *ConsoleOut {
	return &ConsoleOut{out: w, lastIter: -1}
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	if st.RunningMode == universe.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration":  st.IterationNum,
			"Total time":      totalTime,
			"Live cells":      st.LiveCells,
			"Candidate cells": st.CandidateCells,
		}
		for k, v := range st.Details {
			resultData[k] = v
		}
		fmt.Fprintln(c.out, aurora.Colorize("\nFinished:", aurora.RedFg))
		c.printHashData(resultData)
	} else if st.RunningMode == universe.RunningStateRun {
		if st.IterationNum%10 == 0 && st.IterationNum != c.lastIter {
			c.lastIter = st.IterationNum
			fmt.Fprintf(c.out, "  Iterations done: %v, live cells: %v, checked cells: %v\n", st.IterationNum, st.LiveCells, st.CandidateCells)
		}
	}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	fmt.Fprintln(c.out, "Running configuration:")
	fmt.Fprintf(c.out, "  Random area: %v x %v\n", o.Width, o.Height)
	fmt.Fprintf(c.out, "  Interval: %v\n", o.Interval)
	fmt.Fprintf(c.out, "  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.out, aurora.Colorize("\nSimulation started...", aurora.GreenFg))
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.out, "  %s: %v\n", propName, d[propName])
	}
}
