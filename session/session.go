// Package session binds a game to the frame scheduler. Front-ends push input
// into a Session, call Tick once per frame and draw the latest snapshot.
package session

import (
	"context"
	"log"
	"time"

	"github.com/plus3/autotris/config"
	"github.com/plus3/autotris/loop"
	"github.com/plus3/autotris/tetris"
)

// Session owns a game, its input queue and the scheduler that advances them.
type Session struct {
	Game      *tetris.Game
	Input     *Input
	Scheduler *loop.Scheduler

	ghost    bool
	paused   bool
	snapshot tetris.Snapshot
	planner  PlannerStats
	rounds   RoundStats
	logger   *log.Logger
}

// New creates a session from cfg. Extra options are applied after the
// configuration's own.
func New(cfg config.Config, logger *log.Logger, opts ...tetris.Option) *Session {
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		Input:     &Input{},
		Scheduler: loop.NewScheduler(),
		ghost:     cfg.Ghost,
		logger:    logger,
	}

	gameOpts := append(cfg.GameOptions(),
		tetris.WithLogger(logger),
		tetris.WithRoundHandler(s.rounds.observe),
		tetris.WithPlanHook(s.planner.observe),
	)
	s.Game = tetris.NewGame(append(gameOpts, opts...)...)
	s.snapshot = s.Game.Snapshot(s.ghost)

	s.Scheduler.Register(&InputSystem{Session: s})
	s.Scheduler.Register(&GameSystem{Session: s})
	s.Scheduler.Register(&SnapshotSystem{Session: s})
	return s
}

// Register appends a system that runs after the snapshot is captured.
func (s *Session) Register(system loop.System) {
	s.Scheduler.Register(system)
}

// Tick runs one frame and reports whether a system asked to stop.
func (s *Session) Tick(dt float64) bool {
	return s.Scheduler.Once(dt)
}

// Run ticks the session on interval until ctx is done or a system stops it.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	s.Scheduler.Run(ctx, interval)
}

// Snapshot returns the board as of the end of the last frame.
func (s *Session) Snapshot() tetris.Snapshot {
	return s.snapshot
}

func (s *Session) Paused() bool { return s.paused }

func (s *Session) Ghost() bool { return s.ghost }

// SetGhost turns the ghost overlay on or off from the next frame.
func (s *Session) SetGhost(on bool) { s.ghost = on }

func (s *Session) PlannerStats() PlannerStats { return s.planner }

func (s *Session) RoundStats() RoundStats { return s.rounds }
