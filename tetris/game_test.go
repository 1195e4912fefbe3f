package tetris

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t)
	assert.True(t, g.valid())
	assert.Equal(t, uint64(1), g.Spawns())
	assert.Equal(t, 0, g.Pieces())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, DefaultWeights(), *g.Weights())
	_, held := g.Held()
	assert.False(t, held)
}

func TestMoveCollision(t *testing.T) {
	g, _ := newTestGame(t)
	g.piece = NewTetromino(O)

	for range BoardWidth {
		before := g.Active()
		_, err := g.ProcessAction(Move{DX: -1})
		require.NoError(t, err)
		require.True(t, g.valid())
		if g.Active() == before {
			break
		}
	}
	assert.Equal(t, 0, sortedCells(g.Active())[0].X)

	before := g.Active()
	_, err := g.ProcessAction(Move{DX: -1})
	require.NoError(t, err)
	assert.Equal(t, before, g.Active(), "rejected move must leave the piece unchanged")

	// A filled cell blocks a move just like the wall.
	g.board.Cells[0][2] = Filled(Color{1, 1, 1})
	before = g.Active()
	g.ProcessAction(Move{DX: 1})
	assert.Equal(t, before, g.Active())
}

func TestRotateKickOrder(t *testing.T) {
	t.Run("down kick before diagonal", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.piece = NewTetromino(I)
		g.ProcessAction(Rotate{Degrees: 90})
		assert.Equal(t, []Point[int]{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, sortedCells(g.Active()))
	})

	t.Run("right diagonal before left diagonal", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.piece = NewTetromino(I)
		g.board.Cells[3][5] = Filled(Color{1, 1, 1})
		g.ProcessAction(Rotate{Degrees: 90})
		assert.Equal(t, []Point[int]{{6, 0}, {6, 1}, {6, 2}, {6, 3}}, sortedCells(g.Active()))
	})

	t.Run("no kick fits", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.piece = NewTetromino(I)
		for y := 1; y < BoardHeight; y++ {
			fillRow(&g.board, y)
		}
		before := g.Active()
		g.ProcessAction(Rotate{Degrees: 90})
		assert.Equal(t, before, g.Active())
	})
}

func TestSoftDropNeverLocks(t *testing.T) {
	g, _ := newTestGame(t)
	for range 2 * BoardHeight {
		out, err := g.ProcessAction(SoftDrop{})
		require.NoError(t, err)
		assert.False(t, out.ToppedOut)
	}
	assert.Equal(t, 0, g.Pieces())
	assert.False(t, g.canFall())
	assert.Equal(t, uint64(1), g.Spawns())
}

func TestHardDropMatchesGravity(t *testing.T) {
	dropped, _ := newTestGame(t)
	fallen, clock := newTestGame(t)
	require.Equal(t, dropped.Active(), fallen.Active())

	for range 3 {
		_, err := dropped.ProcessAction(HardDrop{})
		require.NoError(t, err)

		want := fallen.Pieces() + 1
		for step := 0; fallen.Pieces() < want; step++ {
			require.Less(t, step, 2*BoardHeight, "gravity never locked the piece")
			clock.Advance(fallen.Timing().FallInterval + time.Millisecond)
			assert.True(t, fallen.Update(false))
		}

		if diff := cmp.Diff(dropped.Board().Cells, fallen.Board().Cells, cmp.AllowUnexported(Cell{})); diff != "" {
			t.Fatalf("hard drop and gravity disagree (-drop +gravity):\n%s", diff)
		}
		assert.Equal(t, dropped.Active(), fallen.Active())
	}
}

func TestLineClear(t *testing.T) {
	g, _ := newTestGame(t)
	fillRow(&g.board, 19, 0)
	g.board.Cells[18][9] = Filled(Color{1, 1, 1})

	g.piece = NewTetromino(I)
	g.ProcessAction(Rotate{Degrees: 90})
	for range 5 {
		g.ProcessAction(Move{DX: -1})
	}
	require.Equal(t, 0, g.Active().Cells()[0].X)

	out, err := g.ProcessAction(HardDrop{})
	require.NoError(t, err)
	assert.False(t, out.ToppedOut)
	assert.Equal(t, 1, out.Cleared)
	assert.Equal(t, 1, out.Lines)
	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, 1, g.Pieces())

	var want [BoardHeight][BoardWidth]bool
	want[17][0] = true
	want[18][0] = true
	want[19][0] = true
	want[19][9] = true
	if diff := cmp.Diff(want, mask(g.board.Cells)); diff != "" {
		t.Errorf("board after clear (-want +got):\n%s", diff)
	}
}

func TestHoldSingleUse(t *testing.T) {
	g, _ := newTestGame(t)
	first := g.Active().Kind
	next := g.Next()

	_, err := g.ProcessAction(Hold{})
	require.NoError(t, err)
	assert.Equal(t, next, g.Active().Kind)
	held, ok := g.Held()
	assert.True(t, ok)
	assert.Equal(t, first, held)

	before := g.Active()
	g.ProcessAction(Hold{})
	assert.Equal(t, before, g.Active(), "second hold must be a no-op")

	g.ProcessAction(HardDrop{})
	g.ProcessAction(Hold{})
	assert.Equal(t, NewTetromino(first), g.Active(), "hold is available again after a lock")
}

func TestTopOut(t *testing.T) {
	var rounds []Outcome
	g, _ := newTestGame(t, WithRoundHandler(func(o Outcome) { rounds = append(rounds, o) }))
	custom := Weights{2, 1, 1, 3, 1}
	*g.Weights() = custom

	for y := 1; y < BoardHeight; y++ {
		fillRow(&g.board, y, 0)
	}
	g.piece = NewTetromino(I)
	g.SetAutoplay(true)

	out, err := g.ProcessAction(HardDrop{})
	require.NoError(t, err)
	assert.Equal(t, Outcome{ToppedOut: true, Lines: 0, Pieces: 1}, out)
	assert.Equal(t, []Outcome{out}, rounds)

	assert.Equal(t, 0, countFilled(g.board.Cells))
	assert.Equal(t, 0, g.Pieces())
	assert.True(t, g.valid())
	assert.Equal(t, custom, *g.Weights())
	assert.True(t, g.Autoplay(), "autoplay mode survives a top-out")
	assert.Empty(t, g.Queued())
}

func TestHoldTopOut(t *testing.T) {
	var rounds []Outcome
	g, _ := newTestGame(t, WithRoundHandler(func(o Outcome) { rounds = append(rounds, o) }))

	// Any kind drawn into play overlaps the two spawn rows.
	fillRow(&g.board, 0)
	fillRow(&g.board, 1)

	out, err := g.ProcessAction(Hold{})
	require.NoError(t, err)
	assert.Equal(t, Outcome{ToppedOut: true}, out)
	assert.Equal(t, []Outcome{out}, rounds)

	assert.Equal(t, 0, countFilled(g.board.Cells))
	assert.True(t, g.valid())
	_, held := g.Held()
	assert.False(t, held)
}

func TestTopOutAfterClear(t *testing.T) {
	var rounds []Outcome
	g, _ := newTestGame(t, WithRoundHandler(func(o Outcome) { rounds = append(rounds, o) }))

	fillRow(&g.board, BoardHeight-1, 0)
	g.piece = NewTetromino(I)
	g.ProcessAction(Rotate{Degrees: 90})
	g.ProcessAction(Move{DX: -5})
	require.Equal(t, 0, sortedCells(g.Active())[0].X)

	// Z spawns over (3,0) (4,0) (4,1) (5,1). The block beside it drops onto
	// (5,1) when the bottom row clears.
	g.bag.sequence[g.bag.cursor] = Z
	g.board.Cells[0][5] = Filled(Color{1, 1, 1})

	out, err := g.ProcessAction(HardDrop{})
	require.NoError(t, err)
	assert.Equal(t, Outcome{ToppedOut: true, Cleared: 1, Lines: 1, Pieces: 1}, out)
	assert.Equal(t, []Outcome{out}, rounds)

	assert.Equal(t, 0, countFilled(g.board.Cells))
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, 0, g.Pieces())
	assert.True(t, g.valid())
}

func TestReset(t *testing.T) {
	g, _ := newTestGame(t)
	g.SetAutoplay(true)
	g.ProcessAction(HardDrop{})
	g.ProcessAction(Hold{})

	_, err := g.ProcessAction(Reset{})
	require.NoError(t, err)
	assert.False(t, g.Autoplay())
	assert.Equal(t, 0, g.Pieces())
	assert.Equal(t, 0, countFilled(g.board.Cells))
	_, held := g.Held()
	assert.False(t, held)
}

func TestNilAction(t *testing.T) {
	g, _ := newTestGame(t)
	before := g.Active()
	_, err := g.ProcessAction(nil)
	assert.True(t, errors.Is(err, ErrNilAction))
	assert.Equal(t, before, g.Active())
}

func TestUpdateGravity(t *testing.T) {
	g, clock := newTestGame(t)
	start := g.Active()

	clock.Advance(g.Timing().SoftFallInterval + time.Millisecond)
	assert.False(t, g.Update(false))
	assert.Equal(t, start, g.Active())

	assert.True(t, g.Update(true))
	want := start
	want.Translate(0, 1)
	assert.Equal(t, want, g.Active())

	clock.Advance(g.Timing().FallInterval)
	assert.False(t, g.Update(false), "fall interval must be exceeded, not just reached")
	clock.Advance(time.Millisecond)
	assert.True(t, g.Update(false))
	want.Translate(0, 1)
	assert.Equal(t, want, g.Active())
}

func TestMoveRestartsFallTimer(t *testing.T) {
	g, clock := newTestGame(t)
	g.piece = NewTetromino(O)
	g.hardDrop()
	require.False(t, g.canFall())

	clock.Advance(900 * time.Millisecond)
	g.ProcessAction(Move{DX: -1})
	require.False(t, g.canFall(), "still resting on the floor")
	clock.Advance(200 * time.Millisecond)
	assert.True(t, g.Update(false), "timer kept running while the piece stayed grounded")
	assert.Equal(t, 1, g.Pieces())

	// Resting on a ledge, then moved off it.
	g.piece = NewTetromino(O)
	g.fallTimer = clock.Now()
	g.board.Cells[2][5] = Filled(Color{1, 1, 1})
	g.board.Cells[2][4] = Filled(Color{1, 1, 1})
	require.False(t, g.canFall())

	clock.Advance(900 * time.Millisecond)
	g.ProcessAction(Move{DX: -2})
	require.True(t, g.canFall())
	clock.Advance(200 * time.Millisecond)
	before := g.Active()
	assert.False(t, g.Update(false), "moving off the ledge restarts the timer")
	assert.Equal(t, before, g.Active())
}

func TestAutoplayReplay(t *testing.T) {
	g, clock := newTestGame(t, WithAutoplay(true))
	require.True(t, g.Autoplay())

	queued := g.Queued()
	require.NotEmpty(t, queued)
	assert.Equal(t, HardDrop{}, queued[len(queued)-1])
	assert.Equal(t, g.LastPlan().Actions, queued)

	for tick := 0; g.Pieces() == 0; tick++ {
		require.LessOrEqual(t, tick, len(queued), "queue did not drain")
		clock.Advance(g.Timing().AutoplayInterval)
		assert.True(t, g.Update(false))
	}
	assert.Empty(t, g.Queued())

	// Empty queue: the next tick plans for the new piece without acting.
	pieces := g.Pieces()
	clock.Advance(g.Timing().AutoplayInterval)
	g.Update(false)
	assert.Equal(t, pieces, g.Pieces())
	assert.NotEmpty(t, g.Queued())

	g.ToggleAutoplay()
	assert.False(t, g.Autoplay())
	assert.Empty(t, g.Queued())
}

func TestAutoplayDiscardsStaleQueue(t *testing.T) {
	g, clock := newTestGame(t, WithAutoplay(true))
	require.NotEmpty(t, g.Queued())

	// The player locks the piece before the queue finishes.
	g.ProcessAction(HardDrop{})
	require.Equal(t, 1, g.Pieces())

	clock.Advance(g.Timing().AutoplayInterval)
	g.Update(false)
	assert.Equal(t, 1, g.Pieces(), "stale actions must not be replayed")

	plan, err := g.Plan()
	require.NoError(t, err)
	assert.Equal(t, plan.Actions, g.Queued())
}

func TestPlayRound(t *testing.T) {
	g, _ := newTestGame(t)
	out, err := g.PlayRound(25)
	require.NoError(t, err)
	if !out.ToppedOut {
		assert.Equal(t, 25, out.Pieces)
		assert.Equal(t, 25, g.Pieces())
	}
	assert.True(t, g.valid())
}

func TestPlanHook(t *testing.T) {
	var plans []Plan
	g, _ := newTestGame(t, WithPlanHook(func(p Plan, took time.Duration, err error) {
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, took, time.Duration(0))
		plans = append(plans, p)
	}))

	g.SetAutoplay(true)
	require.Len(t, plans, 1)
	assert.Equal(t, g.Queued(), plans[0].Actions)

	out, err := g.PlayRound(5)
	require.NoError(t, err)
	assert.Len(t, plans, 1+out.Pieces)
}

func TestUnknownAction(t *testing.T) {
	g, _ := newTestGame(t)
	before := g.Active()

	var err error
	assert.NotPanics(t, func() {
		_, err = g.ProcessAction(&Move{DX: 1})
	})
	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.Contains(t, err.Error(), "*tetris.Move")
	assert.Equal(t, before, g.Active())
}
