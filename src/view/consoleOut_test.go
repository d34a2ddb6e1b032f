package view

import (
	"bytes"
	"strings"
	"testing"

	"infinilife/src/universe"
)

func TestConsoleOut(t *testing.T) {
	o := universe.DefaultUniverseOptions
	o.Interval = 0
	o.MaxSteps = 0
	stateCh := make(chan universe.Status, 10)
	u := universe.NewBaseUniverse(&o, stateCh)
	defer u.Close()

	var out bytes.Buffer
	c := NewConsoleOutTo(&out)
	u.RegisterViewer(c)
	c.Start()
	if !strings.Contains(out.String(), "engine: sequential") {
		t.Fatalf("configuration is not printed:\n%s", out.String())
	}

	u.SettleTemplate("blinker")
	u.Run()
	for st := range stateCh {
		if st.RunningMode == universe.RunningStateFinished {
			break
		}
	}
	res := out.String()
	for _, s := range []string{"Finished:", "Last iteration: 3", "Live cells: 3", "Cycle period: 2"} {
		if !strings.Contains(res, s) {
			t.Fatalf("%q is not found in the output:\n%s", s, res)
		}
	}
}
