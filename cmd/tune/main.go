// Command tune searches for planner weights by playing headless games.
//
// Every generation is appended to a parquet trial log and the current best
// weights are written as a config file that the front-ends can load.
package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/plus3/autotris/config"
)

type tuneOptions struct {
	population int
	rho        float64
	games      int
	pieces     int
	workers    int
	noise      float64
	spread     float64
	seed       uint64
}

func main() {
	configPath := flag.String("config", "", "starting config (weights and seed)")
	iterations := flag.Int("iterations", 20, "generations to run")
	trialsPath := flag.String("trials", "trials.parquet", "parquet trial log")
	bestPath := flag.String("out", "tuned.yaml", "config file receiving the best weights")

	var opts tuneOptions
	flag.IntVar(&opts.population, "population", 50, "candidates per generation")
	flag.Float64Var(&opts.rho, "rho", 0.2, "elite fraction")
	flag.IntVar(&opts.games, "games", 3, "games per candidate")
	flag.IntVar(&opts.pieces, "pieces", 500, "piece limit per game (0 plays to top-out)")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "parallel games")
	flag.Float64Var(&opts.noise, "noise", 0.1, "extra deviation relative to each mean")
	flag.Float64Var(&opts.spread, "spread", 0.5, "initial standard deviation")
	flag.Uint64Var(&opts.seed, "seed", 1, "seed for sampling and game bags")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if opts.population < 1 || opts.games < 1 {
		log.Fatalf("population and games must be positive")
	}

	ce := newCrossEntropy(cfg.Weights, opts)
	var (
		rows []trialRow
		best candidate
	)
	for i := 1; i <= *iterations; i++ {
		start := time.Now()
		cands := ce.step()
		rows = append(rows, trialRows(i, ce.elite, cands)...)

		if cands[0].mean > best.mean || i == 1 {
			best = cands[0]
		}
		log.Printf("Generation %d: best %.1f lines, elite mean %+v (%v)",
			i, cands[0].mean, ce.weights(), time.Since(start).Round(time.Millisecond))

		if err := writeTrials(*trialsPath, rows); err != nil {
			log.Fatalf("Failed to write trials: %v", err)
		}
		out := cfg
		out.Weights = best.weights
		if err := config.Save(*bestPath, out); err != nil {
			log.Fatalf("Failed to save weights: %v", err)
		}
	}
	log.Printf("Best candidate: %.1f lines with %+v", best.mean, best.weights)
}
