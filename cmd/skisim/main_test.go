package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scifi6546/ski-tycoon-v2/scenario"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), config{list: true}, quiet(), &out))
	assert.Equal(t, strings.Join(scenario.Builtin().Names(), "\n")+"\n", out.String())
}

func TestRunTextReport(t *testing.T) {
	var out bytes.Buffer
	cfg := config{name: "PGM File", ticks: 5, depth: 2}
	require.NoError(t, run(context.Background(), cfg, quiet(), &out))

	text := out.String()
	assert.Contains(t, text, "--- Simulation Report: PGM File ---")
	assert.Contains(t, text, "Ticks: 5 | Skiers: 5")
	assert.Contains(t, text, "  Grid, width: 8 height: 4")
	assert.Contains(t, text, "  Lift start: (0, 0) end: (7, 3)")
	assert.Contains(t, text, "Skier 4 at ")
	assert.Contains(t, text, "  Search Start: Finite(0)")
}

func TestRunJSONReport(t *testing.T) {
	var out bytes.Buffer
	cfg := config{name: "PGM File", ticks: 3, depth: 1, jsonOutput: true}
	require.NoError(t, run(context.Background(), cfg, quiet(), &out))

	var r report
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, "PGM File", r.Scenario)
	assert.Equal(t, 3, r.Ticks)
	assert.Len(t, r.Skiers, 5)
	for _, s := range r.Skiers {
		assert.Len(t, s.Decisions, 2)
	}
}

func TestRunErrors(t *testing.T) {
	err := run(context.Background(), config{name: "Nowhere"}, quiet(), io.Discard)
	require.ErrorIs(t, err, scenario.ErrNotFound)

	err = run(context.Background(), config{name: "PGM File", ticks: -1}, quiet(), io.Discard)
	require.Error(t, err)

	err = run(context.Background(), config{scenarioFile: "does-not-exist.yaml"}, quiet(), io.Discard)
	require.Error(t, err)
}
