package tetris

import (
	"log"
	"slices"
	"time"

	"github.com/pkg/errors"
)

// Outcome describes the effect of an action or gravity step on the round.
type Outcome struct {
	// ToppedOut is set when the round ended. Lines and Pieces then hold the
	// final counts of the round that was just reset.
	ToppedOut bool
	// Cleared is the number of rows the step removed.
	Cleared int
	Lines   int
	Pieces  int
}

type autoplayQueue struct {
	// actions is stored reversed: the next action is the last element.
	actions  []Action
	lastTick time.Time
	spawn    uint64
}

// Game is the simulation: the board, the active piece, the bag and hold slot,
// the timers and the autoplay queue. It is not safe for concurrent use.
type Game struct {
	field

	bag      Bag
	rng      Shuffler
	hold     Kind
	hasHold  bool
	holdUsed bool

	fallTimer time.Time
	lines     int
	pieces    int
	spawns    uint64

	autoplay        *autoplayQueue
	autoplayOnStart bool
	lastPlan        Plan

	timing  Timing
	clock   Clock
	logger  *log.Logger
	onRound func(Outcome)
	onPlan  func(Plan, time.Duration, error)
}

// NewGame shuffles a bag and spawns the first piece.
func NewGame(opts ...Option) *Game {
	g := &Game{
		field:  field{board: NewBoard(DefaultWeights())},
		rng:    globalShuffler{},
		timing: DefaultTiming(),
		clock:  SystemClock{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.bag = NewBag(g.rng)
	g.restart()
	if g.autoplayOnStart {
		g.SetAutoplay(true)
	}
	return g
}

// restart clears the round in place. Weights, timing and the autoplay mode
// survive; a pending autoplay queue does not.
func (g *Game) restart() {
	g.board.Clear()
	g.bag.Reshuffle()
	g.hold, g.hasHold, g.holdUsed = 0, false, false
	g.lines, g.pieces = 0, 0
	g.spawn(g.bag.Next())
	if g.autoplay != nil {
		g.autoplay.actions = nil
	}
}

// spawn replaces the active piece with a fresh k and reports whether it fits.
func (g *Game) spawn(k Kind) bool {
	g.piece = NewTetromino(k)
	g.spawns++
	g.fallTimer = g.clock.Now()
	return g.valid()
}

// ProcessAction applies a to the game. Invalid moves and rotations are
// silently ignored; only a nil or unknown action is an error.
func (g *Game) ProcessAction(a Action) (Outcome, error) {
	switch a := a.(type) {
	case Move:
		g.moveBy(a.DX)
	case Rotate:
		g.rotate(a.Degrees)
	case SoftDrop:
		if g.fall() {
			g.fallTimer = g.clock.Now()
		}
	case HardDrop:
		g.hardDrop()
		return g.finish(), nil
	case Hold:
		return g.holdPiece(), nil
	case Reset:
		g.autoplay = nil
		g.restart()
	case nil:
		return g.outcome(), errors.WithStack(ErrNilAction)
	default:
		return g.outcome(), errors.Wrapf(ErrUnknownAction, "%T", a)
	}
	return g.outcome(), nil
}

func (g *Game) moveBy(dx int) {
	before := g.canFall()
	if g.move(dx) && g.canFall() != before {
		g.fallTimer = g.clock.Now()
	}
}

func (g *Game) holdPiece() Outcome {
	if g.holdUsed {
		return g.outcome()
	}

	next := g.hold
	if !g.hasHold {
		next = g.bag.Next()
	}
	g.hold, g.hasHold = g.piece.Kind, true
	g.holdUsed = true

	if !g.spawn(next) {
		return g.topOut(0)
	}
	return g.outcome()
}

// finish locks the active piece and spawns the next one. A spawn that
// collides ends the round before any rows are cleared.
func (g *Game) finish() Outcome {
	g.board.Lock(g.piece)
	g.pieces++

	if !g.spawn(g.bag.Next()) {
		return g.topOut(0)
	}

	cleared := g.board.ClearFullRows()
	g.lines += cleared
	g.holdUsed = false

	// Rows shifted down under a piece spawned into a nearly full stack.
	if !g.valid() {
		return g.topOut(cleared)
	}

	out := g.outcome()
	out.Cleared = cleared
	return out
}

// topOut reports the round, including the rows the final lock cleared, and
// restarts it.
func (g *Game) topOut(cleared int) Outcome {
	out := Outcome{ToppedOut: true, Cleared: cleared, Lines: g.lines, Pieces: g.pieces}
	g.logger.Printf("round over: %d lines, %d pieces", out.Lines, out.Pieces)
	if g.onRound != nil {
		g.onRound(out)
	}
	g.restart()
	return out
}

func (g *Game) outcome() Outcome {
	return Outcome{Lines: g.lines, Pieces: g.pieces}
}

// Update advances the timers. When autoplay is on and its interval has
// elapsed it replays one queued action, planning a new queue when empty.
// Gravity then runs on the soft interval when soft is held and the piece can
// fall. Update reports whether the visible board may have changed.
func (g *Game) Update(soft bool) bool {
	now := g.clock.Now()
	changed := false

	if q := g.autoplay; q != nil && now.Sub(q.lastTick) >= g.timing.AutoplayInterval {
		if len(q.actions) > 0 && q.spawn != g.spawns {
			q.actions = nil
		}
		if n := len(q.actions); n > 0 {
			a := q.actions[n-1]
			q.actions = q.actions[:n-1]
			if _, err := g.ProcessAction(a); err != nil {
				g.logger.Printf("autoplay: %v", err)
			}
		} else {
			g.replan(q)
		}
		q.lastTick = now
		changed = true
	}

	interval := g.timing.FallInterval
	if soft && g.canFall() {
		interval = g.timing.SoftFallInterval
	}
	if now.Sub(g.fallTimer) > interval {
		if !g.fall() {
			g.finish()
		}
		g.fallTimer = now
		changed = true
	}
	return changed
}

// observedPlan runs the search and reports it to the plan hook.
func (g *Game) observedPlan() (Plan, error) {
	start := time.Now()
	plan, err := g.Plan()
	if g.onPlan != nil {
		g.onPlan(plan, time.Since(start), err)
	}
	return plan, err
}

func (g *Game) replan(q *autoplayQueue) {
	plan, err := g.observedPlan()
	if err != nil {
		g.logger.Printf("autoplay: %v", err)
	}
	g.lastPlan = plan
	q.actions = slices.Clone(plan.Actions)
	slices.Reverse(q.actions)
	q.spawn = g.spawns
}

// SetAutoplay turns the planner on or off. Turning it on plans the current
// piece immediately; turning it off discards the queue.
func (g *Game) SetAutoplay(on bool) {
	switch {
	case on && g.autoplay == nil:
		q := &autoplayQueue{lastTick: g.clock.Now()}
		g.replan(q)
		g.autoplay = q
	case !on:
		g.autoplay = nil
	}
}

func (g *Game) ToggleAutoplay() {
	g.SetAutoplay(g.autoplay == nil)
}

func (g *Game) Autoplay() bool {
	return g.autoplay != nil
}

// Queued returns the pending autoplay actions in replay order.
func (g *Game) Queued() []Action {
	if g.autoplay == nil {
		return nil
	}
	q := slices.Clone(g.autoplay.actions)
	slices.Reverse(q)
	return q
}

// LastPlan returns the most recent plan made for autoplay.
func (g *Game) LastPlan() Plan {
	return g.lastPlan
}

// Weights returns the live heuristic weights. Changes apply to the next search.
func (g *Game) Weights() *Weights {
	return &g.board.Weights
}

// Timing returns the live timer intervals.
func (g *Game) Timing() *Timing {
	return &g.timing
}

// Board returns a copy of the locked cells.
func (g *Game) Board() Board {
	return g.board
}

// Active returns a copy of the falling piece.
func (g *Game) Active() Tetromino {
	return g.piece
}

// Held returns the kind in the hold slot, if any.
func (g *Game) Held() (Kind, bool) {
	return g.hold, g.hasHold
}

func (g *Game) Next() Kind  { return g.bag.Peek() }
func (g *Game) Lines() int  { return g.lines }
func (g *Game) Pieces() int { return g.pieces }

// Spawns counts every piece spawned since the game was created.
func (g *Game) Spawns() uint64 { return g.spawns }

// PlayRound lets the planner play without timers, applying each plan through
// ProcessAction, until the board tops out or limit pieces have been placed.
// A limit of zero or less plays until top-out. A search without placements
// falls back to a hard drop, as autoplay does.
func (g *Game) PlayRound(limit int) (Outcome, error) {
	for limit <= 0 || g.pieces < limit {
		plan, err := g.observedPlan()
		if err != nil {
			g.logger.Printf("autoplay: %v", err)
		}
		for _, a := range plan.Actions {
			out, err := g.ProcessAction(a)
			if err != nil {
				return out, err
			}
			if out.ToppedOut {
				return out, nil
			}
		}
	}
	return g.outcome(), nil
}
