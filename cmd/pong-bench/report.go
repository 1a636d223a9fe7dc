package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
)

type Report struct {
	// Configuration
	Stage    pong.Stage
	Duration time.Duration
	Frames   int
	Systems  int

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	StepTime       Stats
	Scheduler      ecs.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	// Final world state
	Ball        pong.BallState
	Left, Right pong.PaddleState
	Score       pong.Score
	Scoring     bool
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Pong Bench Report

## Configuration
- **Stage:** {{.Stage}}
- **Frame Limit:** {{if .Frames}}{{.Frames}}{{else}}none{{end}}
- **Time Limit:** {{.Duration}}
- **Systems:** {{.Systems}}

## Performance Results
- **Frames Simulated:** {{.TotalFrames}} ({{gameTime .TotalFrames}} of game time)
- **Wall Time:** {{.TotalTime}}
- **Step Time (Frame):**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Scheduler.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Final State
- **Ball:** pos ({{.Ball.Position.X}}, {{.Ball.Position.Y}}) vel ({{.Ball.Velocity.X}}, {{.Ball.Velocity.Y}})
- **Left Paddle:** ({{.Left.Position.X}}, {{.Left.Position.Y}})
- **Right Paddle:** ({{.Right.Position.X}}, {{.Right.Position.Y}})
{{- if .Scoring}}
- **Score:** {{.Score.Left}} - {{.Score.Right}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
	"gameTime": func(frames int64) time.Duration {
		return time.Duration(frames) * time.Second / pong.FramesPerSecond
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
