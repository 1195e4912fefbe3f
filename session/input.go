package session

import "github.com/plus3/autotris/tetris"

// Input collects front-end events between frames. Discrete key presses are
// queued as actions; soft drop is a level that stays set until released.
type Input struct {
	actions        []tetris.Action
	soft           bool
	toggleAutoplay bool
	togglePause    bool
}

// Push queues an action for the next frame.
func (in *Input) Push(a tetris.Action) {
	in.actions = append(in.actions, a)
}

// SetSoft sets whether soft drop is held.
func (in *Input) SetSoft(on bool) {
	in.soft = on
}

func (in *Input) Soft() bool {
	return in.soft
}

func (in *Input) ToggleAutoplay() {
	in.toggleAutoplay = !in.toggleAutoplay
}

func (in *Input) TogglePause() {
	in.togglePause = !in.togglePause
}

// Pending returns the number of queued actions.
func (in *Input) Pending() int {
	return len(in.actions)
}

type drained struct {
	actions        []tetris.Action
	toggleAutoplay bool
	togglePause    bool
}

func (in *Input) drain() drained {
	d := drained{
		actions:        in.actions,
		toggleAutoplay: in.toggleAutoplay,
		togglePause:    in.togglePause,
	}
	in.actions = nil
	in.toggleAutoplay = false
	in.togglePause = false
	return d
}
