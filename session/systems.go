package session

import "github.com/plus3/autotris/loop"

// InputSystem applies the toggles and actions queued since the last frame.
// While paused, queued actions are dropped.
type InputSystem struct {
	*Session
	Applied int
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	in := s.Input.drain()
	if in.togglePause {
		s.paused = !s.paused
		s.logger.Printf("paused: %v", s.paused)
	}
	if in.toggleAutoplay {
		s.Game.ToggleAutoplay()
		s.logger.Printf("autoplay: %v", s.Game.Autoplay())
	}
	if s.paused {
		return
	}

	for _, a := range in.actions {
		if _, err := s.Game.ProcessAction(a); err != nil {
			s.logger.Printf("input: %v", err)
			continue
		}
		s.Applied++
	}
}

// GameSystem advances the game timers by one frame.
type GameSystem struct {
	*Session
	Changed bool
}

func (s *GameSystem) Execute(frame *loop.Frame) {
	s.Changed = false
	if s.paused {
		return
	}
	s.Changed = s.Game.Update(s.Input.Soft())
}

// SnapshotSystem captures the visible board once input and timers have run.
type SnapshotSystem struct {
	*Session
}

func (s *SnapshotSystem) Execute(frame *loop.Frame) {
	s.snapshot = s.Game.Snapshot(s.ghost)
}
