package tetris

import (
	"log"
	"math/rand/v2"
	"time"
)

// Timing holds the intervals driving Update.
type Timing struct {
	FallInterval     time.Duration `yaml:"fall_interval"`
	SoftFallInterval time.Duration `yaml:"soft_fall_interval"`
	AutoplayInterval time.Duration `yaml:"autoplay_interval"`
}

// DefaultTiming returns one row per second of gravity, 80ms while soft
// dropping and one autoplay action every 10ms.
func DefaultTiming() Timing {
	return Timing{
		FallInterval:     time.Second,
		SoftFallInterval: 80 * time.Millisecond,
		AutoplayInterval: 10 * time.Millisecond,
	}
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source for the gravity and autoplay timers.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithRand sets the source used to shuffle the bag.
func WithRand(r Shuffler) Option {
	return func(g *Game) { g.rng = r }
}

// WithSeed shuffles the bag from a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func WithWeights(w Weights) Option {
	return func(g *Game) { g.board.Weights = w }
}

func WithTiming(t Timing) Option {
	return func(g *Game) { g.timing = t }
}

// WithLogger sets the logger for round results and planner defects.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRoundHandler registers fn to be called with the outcome of every round
// that ends by topping out.
func WithRoundHandler(fn func(Outcome)) Option {
	return func(g *Game) { g.onRound = fn }
}

// WithPlanHook registers fn to observe every autoplay search together with
// its wall-clock duration.
func WithPlanHook(fn func(p Plan, took time.Duration, err error)) Option {
	return func(g *Game) { g.onPlan = fn }
}

// WithAutoplay starts the game with the planner driving.
func WithAutoplay(on bool) Option {
	return func(g *Game) { g.autoplayOnStart = on }
}

// globalShuffler shuffles with the process-wide source.
type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
