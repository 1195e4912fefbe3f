package tetris

import "github.com/pkg/errors"

// Errors in this file indicate logic defects. Collisions and top-outs are
// never reported as errors.
var (
	// ErrUnknownKind is returned when converting an index outside 0..6 to a Kind.
	ErrUnknownKind = errors.New("unknown tetromino kind")

	// ErrNoPlacement is returned by the planner when no candidate placement was
	// graded. The accompanying plan is still a usable single HardDrop.
	ErrNoPlacement = errors.New("autoplay search found no placement")

	// ErrNilAction is returned by ProcessAction for a nil Action.
	ErrNilAction = errors.New("nil action")

	// ErrUnknownAction is returned by ProcessAction for an Action that is not
	// one of the value types in action.go, such as a pointer to one.
	ErrUnknownAction = errors.New("unknown action")
)
