package tetris_test

import (
	"fmt"
	"time"

	"github.com/plus3/autotris/tetris"
)

// ExampleGame drives the state machine with explicit actions and a manual
// clock, the way a front-end feeds key presses and frame ticks.
func ExampleGame() {
	clock := tetris.NewManualClock(time.Time{})
	game := tetris.NewGame(tetris.WithSeed(7), tetris.WithClock(clock))

	game.ProcessAction(tetris.Move{DX: -1})
	game.ProcessAction(tetris.Rotate{Degrees: 90})
	out, err := game.ProcessAction(tetris.HardDrop{})
	if err != nil {
		panic(err)
	}
	fmt.Println("pieces:", out.Pieces, "topped out:", out.ToppedOut)

	// One second of gravity moves the new piece down a row.
	before := game.Active().Anchor.Y
	clock.Advance(time.Second + time.Millisecond)
	game.Update(false)
	fmt.Println("fell:", game.Active().Anchor.Y-before)

	// Output:
	// pieces: 1 topped out: false
	// fell: 1
}

// ExampleGame_Plan asks the planner for a placement and replays it.
func ExampleGame_Plan() {
	game := tetris.NewGame(tetris.WithSeed(7), tetris.WithClock(tetris.NewManualClock(time.Time{})))

	plan, err := game.Plan()
	if err != nil {
		panic(err)
	}
	for _, a := range plan.Actions {
		game.ProcessAction(a)
	}
	fmt.Println("ends with:", plan.Actions[len(plan.Actions)-1])
	fmt.Println("pieces:", game.Pieces())

	// Output:
	// ends with: HardDrop
	// pieces: 1
}

// ExampleBoard shows the features the planner grades.
func ExampleBoard() {
	board := tetris.NewBoard(tetris.DefaultWeights())
	o := tetris.NewTetromino(tetris.O)
	o.Translate(0, 18)
	board.Lock(o)

	fmt.Println("heights:", board.Heights())
	fmt.Println("holes:", board.Holes())
	fmt.Printf("bumpiness: %.1f\n", board.Bumpiness())
	fmt.Printf("grade: %.2f\n", board.Grade(0, 0))

	// Output:
	// heights: [0 0 0 0 2 2 0 0 0 0]
	// holes: 0
	// bumpiness: 6.4
	// grade: -3.94
}
