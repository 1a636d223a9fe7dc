package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	world, err := pong.NewWorld(pong.DefaultConfig(pong.StageFixed), benchScript())
	require.NoError(t, err)
	for range 120 {
		world.Step()
	}

	report := &Report{
		Stage:       pong.StageFixed,
		Frames:      120,
		TotalFrames: 120,
		Scheduler:   *world.Stats(),
		Ball:        world.Ball(),
		Score:       world.Score(),
		Scoring:     true,
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Stage:** fixed")
	assert.Contains(t, out, "(2s of game time)")
	assert.Contains(t, out, "| BallMovementSystem | 120 |")
	assert.Contains(t, out, "**Score:**")
}

func TestBenchScriptLoops(t *testing.T) {
	script := benchScript()
	first := script.Buttons()
	for range len(script.Frames) - 1 {
		script.Buttons()
	}
	assert.Equal(t, first, script.Buttons())
}
