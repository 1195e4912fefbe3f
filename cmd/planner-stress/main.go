// Command planner-stress runs the autoplay planner headless and reports how
// its search latency compares with a 60Hz frame budget.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/autotris/config"
	"github.com/plus3/autotris/loop"
	"github.com/plus3/autotris/session"
	"github.com/plus3/autotris/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	step := flag.Duration("step", session.FrameBudget, "Simulated time per frame.")
	configPath := flag.String("config", "", "Config file with the weights and timing to test.")
	seed := flag.Uint64("seed", 1, "Bag seed.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg.Seed = *seed
	cfg.Autoplay = true

	log.Println("Starting planner stress test...")

	clock := tetris.NewManualClock(time.Now())
	s := session.New(cfg, log.New(io.Discard, "", 0), tetris.WithClock(clock))
	searches := &SearchRecorder{Session: s}
	s.Register(searches)

	report := &Report{
		Duration:       *duration,
		Step:           *step,
		Seed:           *seed,
		Weights:        cfg.Weights,
		Budget:         session.FrameBudget,
		GCPauseMetrics: *gcPauseMetrics,
	}

	var memBefore, memAfter runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	log.Printf("Running autoplay for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			clock.Advance(*step)

			frameStart := time.Now()
			s.Tick(step.Seconds())
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Frames = s.Scheduler.Stats().Frames
	report.SearchTime.Samples = searches.Samples
	report.Planner = s.PlannerStats()
	report.Rounds = s.RoundStats()
	report.Finalize()
	runtime.ReadMemStats(&memAfter)
	report.Memory = memoryDelta(&memBefore, &memAfter)

	log.Println("Run finished.")

	fmt.Println("\n\n--- Planner Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// SearchRecorder keeps the latest search latency of every frame that ran a
// search. It is registered after the session's own systems.
type SearchRecorder struct {
	*session.Session
	Samples []time.Duration
	seen    int
}

func (r *SearchRecorder) Execute(*loop.Frame) {
	stats := r.PlannerStats()
	if stats.Searches != r.seen {
		r.seen = stats.Searches
		r.Samples = append(r.Samples, stats.Last)
	}
}
