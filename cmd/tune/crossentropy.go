package main

import (
	"io"
	"log"
	"math"
	"math/rand/v2"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/plus3/autotris/tetris"
)

// crossEntropy searches the weight space with the noisy cross-entropy
// method: sample a population around the current means, score every
// candidate over the same game seeds and refit the means and deviations to
// the elite fraction.
type crossEntropy struct {
	means, stddevs [tetris.WeightCount]float64

	population int
	elite      int
	games      int
	pieces     int
	workers    int
	noise      float64
	seed       uint64

	rng       *rand.Rand
	iteration int
	quiet     *log.Logger
}

type candidate struct {
	weights tetris.Weights
	lines   []int
	pieces  []int
	mean    float64
}

func newCrossEntropy(start tetris.Weights, opts tuneOptions) *crossEntropy {
	ce := &crossEntropy{
		population: opts.population,
		elite:      max(1, int(opts.rho*float64(opts.population))),
		games:      opts.games,
		pieces:     opts.pieces,
		workers:    max(1, opts.workers),
		noise:      opts.noise,
		seed:       opts.seed,
		rng:        rand.New(rand.NewPCG(opts.seed, opts.seed^0x5851f42d4c957f2d)),
		quiet:      log.New(io.Discard, "", 0),
	}
	for i, w := range start.Vector() {
		ce.means[i] = float64(w)
		ce.stddevs[i] = opts.spread
	}
	return ce
}

// sample draws a candidate. The extra noise decays with the iteration count
// so the search does not collapse onto the first elite set.
func (ce *crossEntropy) sample() tetris.Weights {
	noise := ce.noise / math.Log10(10+float64(ce.iteration))
	var v [tetris.WeightCount]float32
	for i := range v {
		n := distuv.Normal{
			Mu:    ce.means[i],
			Sigma: ce.stddevs[i] + math.Abs(ce.means[i])*noise,
			Src:   ce.rng,
		}
		v[i] = float32(max(0, n.Rand()))
	}
	return tetris.WeightsFromVector(v)
}

// step runs one generation and returns its candidates sorted best first.
func (ce *crossEntropy) step() []candidate {
	ce.iteration++
	cands := make([]candidate, ce.population)
	for i := range cands {
		cands[i].weights = ce.sample()
	}
	ce.evaluate(cands)

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].mean > cands[j].mean })
	ce.refit(cands[:ce.elite])
	return cands
}

// evaluate scores every candidate on a pool of workers. Each worker owns the
// games it plays.
func (ce *crossEntropy) evaluate(cands []candidate) {
	jobs := make(chan int, len(cands))
	for i := range cands {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range ce.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				ce.score(&cands[i])
			}
		}()
	}
	wg.Wait()
}

// score plays the candidate on seeds shared by the whole generation.
func (ce *crossEntropy) score(c *candidate) {
	c.lines = make([]int, ce.games)
	c.pieces = make([]int, ce.games)
	var total float64
	for j := range ce.games {
		g := tetris.NewGame(
			tetris.WithSeed(ce.seed+uint64(j)),
			tetris.WithWeights(c.weights),
			tetris.WithLogger(ce.quiet),
		)
		out, err := g.PlayRound(ce.pieces)
		if err != nil {
			ce.quiet.Printf("game %d: %v", j, err)
		}
		c.lines[j] = out.Lines
		c.pieces[j] = out.Pieces
		total += float64(out.Lines)
	}
	c.mean = total / float64(ce.games)
}

func (ce *crossEntropy) refit(elite []candidate) {
	column := make([]float64, len(elite))
	for i := range ce.means {
		for j, c := range elite {
			column[j] = float64(c.weights.Vector()[i])
		}
		ce.means[i], ce.stddevs[i] = stat.MeanStdDev(column, nil)
		if math.IsNaN(ce.stddevs[i]) {
			ce.stddevs[i] = 0
		}
	}
}

func (ce *crossEntropy) weights() tetris.Weights {
	var v [tetris.WeightCount]float32
	for i, m := range ce.means {
		v[i] = float32(m)
	}
	return tetris.WeightsFromVector(v)
}
