package tetris

import "fmt"

// Action is an input to the state machine. The set of actions is closed:
// only the types in this file implement it.
type Action interface {
	isAction()
	fmt.Stringer
}

// Move shifts the active piece DX columns.
type Move struct{ DX int }

// Rotate turns the active piece by Degrees, trying small kicks on collision.
type Rotate struct{ Degrees int }

// HardDrop drops the active piece as far as it goes and locks it.
type HardDrop struct{}

// SoftDrop moves the active piece down one row without locking it.
type SoftDrop struct{}

// Hold swaps the active piece with the hold slot, once per spawn.
type Hold struct{}

// Reset restarts the game.
type Reset struct{}

func (Move) isAction()     {}
func (Rotate) isAction()   {}
func (HardDrop) isAction() {}
func (SoftDrop) isAction() {}
func (Hold) isAction()     {}
func (Reset) isAction()    {}

func (a Move) String() string   { return fmt.Sprintf("Move(%d)", a.DX) }
func (a Rotate) String() string { return fmt.Sprintf("Rotate(%d)", a.Degrees) }
func (HardDrop) String() string { return "HardDrop" }
func (SoftDrop) String() string { return "SoftDrop" }
func (Hold) String() string     { return "Hold" }
func (Reset) String() string    { return "Reset" }
