package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBoardIsValid(t *testing.T) {
	b := NewBoard(DefaultWeights())
	p := NewTetromino(O)
	assert.True(t, b.IsValid(p))

	left := p
	left.Translate(-5, 0)
	assert.False(t, b.IsValid(left))

	below := p
	below.Translate(0, 19)
	assert.False(t, b.IsValid(below))

	b.Cells[1][4] = Filled(Color{1, 0, 0})
	assert.False(t, b.IsValid(p))
}

func TestClearFullRows(t *testing.T) {
	b := NewBoard(DefaultWeights())
	fillRow(&b, 19)
	fillRow(&b, 17)
	b.Cells[18][2] = Filled(Color{1, 0, 0})
	b.Cells[16][7] = Filled(Color{0, 1, 0})

	assert.Equal(t, 2, b.FullRows())
	assert.Equal(t, 2, b.ClearFullRows())
	assert.Equal(t, 0, b.FullRows())

	var want [BoardHeight][BoardWidth]bool
	want[19][2] = true
	want[18][7] = true
	if diff := cmp.Diff(want, mask(b.Cells)); diff != "" {
		t.Errorf("board after clear (-want +got):\n%s", diff)
	}

	c, _ := b.Cells[18][7].Color()
	assert.Equal(t, Color{0, 1, 0}, c)
}

func TestBoardFeatures(t *testing.T) {
	b := NewBoard(DefaultWeights())
	// column 1: filled at 15, hole at 16..19
	b.Cells[15][1] = Filled(Color{1, 1, 1})
	// row 19: filled 3, gap 4..5, filled 6, gap 7, filled 8
	for _, x := range []int{3, 6, 8} {
		b.Cells[19][x] = Filled(Color{1, 1, 1})
	}

	assert.Equal(t, [BoardWidth]int{0, 5, 0, 1, 0, 0, 1, 0, 1, 0}, b.Heights())
	assert.Equal(t, 5, b.MaxHeight())
	assert.Equal(t, 4, b.Holes())
	assert.Equal(t, 2, b.HorizontalHoles())
	assert.InDelta(t, 9.6, b.Bumpiness(), 1e-4)
}

func TestGrade(t *testing.T) {
	b := NewBoard(DefaultWeights())
	assert.Equal(t, float32(0), b.Grade(0, 0))

	o := NewTetromino(O)
	o.Translate(0, 18)
	b.Lock(o)
	// bumpiness 6.4, max height 2
	assert.InDelta(t, -3.9440, b.Grade(0, 0), 1e-3)

	// Clearing rows only ever helps.
	assert.Greater(t, b.Grade(0, 1), b.Grade(0, 0))
	// New holes only ever hurt.
	assert.Less(t, b.Grade(-1, 0), b.Grade(0, 0))
}

func TestWeightsVector(t *testing.T) {
	w := Weights{1, 2, 3, 4, 5}
	assert.Equal(t, w, WeightsFromVector(w.Vector()))

	assert.NoError(t, w.Nudge(2, 0.5))
	assert.Equal(t, float32(3.5), w.Height)
	assert.Error(t, w.Nudge(WeightCount, 1))
}

func TestBoardString(t *testing.T) {
	b := NewBoard(DefaultWeights())
	b.Cells[0][0] = Filled(Color{1, 1, 1})
	s := b.String()
	assert.Equal(t, strFilledCell, s[:len(strFilledCell)])
}
