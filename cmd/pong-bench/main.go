package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pong/input"
	"github.com/plus3/pong/pong"
)

func main() {
	stage := pong.StageFixed
	flag.Var(&stage, "stage", "Demo stage to run: input, velocity, paddle or fixed (or 1-4).")
	duration := flag.Duration("duration", 5*time.Second, "Upper bound on how long the run may take.")
	frames := flag.Int("frames", 60*60, "Number of frames to simulate; 0 runs until -duration expires.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *frames == 0 && *duration <= 0 {
		log.Fatalf("pong-bench: need a positive -frames or -duration")
	}

	world, err := pong.NewWorld(pong.DefaultConfig(stage), benchScript())
	if err != nil {
		log.Fatalf("pong-bench: %v", err)
	}

	report := &Report{
		Stage:          stage,
		Duration:       *duration,
		Frames:         *frames,
		Systems:        world.Stats().SystemCount,
		GCPauseMetrics: *gcPauseMetrics,
		StepTime: Stats{
			Samples: make([]time.Duration, 0, max(*frames, 0)),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Simulating stage %s...\n", stage)
	ctx := context.Background()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	startTime := time.Now()

Loop:
	for *frames == 0 || report.TotalFrames < int64(*frames) {
		select {
		case <-ctx.Done():
			break Loop
		default:
			stepStart := time.Now()
			world.Step()
			report.StepTime.Samples = append(report.StepTime.Samples, time.Since(stepStart))
			report.TotalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.StepTime.Finalize()
	report.Scheduler = *world.Stats()
	report.Ball = world.Ball()
	report.Left = world.Paddle(pong.SideLeft)
	report.Right = world.Paddle(pong.SideRight)
	report.Score = world.Score()
	report.Scoring = world.Features().Scoring
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n--- Pong Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// benchScript sweeps the pad up and down with A pressed on the way up, so
// every stage exercises steering, boosting and paddle clamping.
func benchScript() *input.Script {
	script := input.NewScript().
		Hold(input.Up|input.A, 45).
		Hold(input.None, 15).
		Hold(input.Down|input.Right, 90).
		Hold(input.Left, 30)
	script.Loop = true
	return script
}
