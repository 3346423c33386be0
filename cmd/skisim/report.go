package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/scifi6546/ski-tycoon-v2/sim"
)

type report struct {
	Scenario string           `json:"scenario"`
	Ticks    int              `json:"ticks"`
	Elapsed  time.Duration    `json:"elapsed"`
	Layers   []string         `json:"layers"`
	Skiers   []sim.SkierState `json:"skiers"`
}

func newReport(name string, w *sim.World, elapsed time.Duration) report {
	return report{
		Scenario: name,
		Ticks:    w.Ticks(),
		Elapsed:  elapsed,
		Layers:   w.Describe(),
		Skiers:   w.Skiers(),
	}
}

func writeReport(out io.Writer, r report, jsonFmt bool) error {
	if jsonFmt {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- Simulation Report: %s ---\n", r.Scenario)
	fmt.Fprintf(&buf, "Ticks: %d | Skiers: %d | Elapsed: %s\n", r.Ticks, len(r.Skiers), r.Elapsed)
	buf.WriteString("Layers:\n")
	for _, l := range r.Layers {
		fmt.Fprintf(&buf, "  %s\n", l)
	}
	for _, s := range r.Skiers {
		fmt.Fprintf(&buf, "Skier %d at (%.2f, %.2f, %.2f), replans: %d\n",
			s.ID, s.Position.X, s.Position.Y, s.Position.Z, s.Replans)
		for _, d := range s.Decisions {
			fmt.Fprintf(&buf, "  %s\n", d)
		}
	}
	_, err := out.Write(buf.Bytes())

	return err
}
