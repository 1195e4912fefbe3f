package tetris

import (
	"io"
	"log"
	"testing"
	"time"
)

var quiet = log.New(io.Discard, "", 0)

func newTestGame(t testing.TB, opts ...Option) (*Game, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	base := []Option{WithClock(clock), WithSeed(42), WithLogger(quiet)}
	return NewGame(append(base, opts...)...), clock
}

// mask reduces a grid to its occupancy.
func mask(g Grid) [BoardHeight][BoardWidth]bool {
	var m [BoardHeight][BoardWidth]bool
	for y := range BoardHeight {
		for x := range BoardWidth {
			m[y][x] = g[y][x].IsFilled()
		}
	}
	return m
}

func countFilled(g Grid) int {
	var n int
	for _, row := range g {
		for _, c := range row {
			if c.IsFilled() {
				n++
			}
		}
	}
	return n
}

func fillRow(b *Board, y int, except ...int) {
	for x := range BoardWidth {
		b.Cells[y][x] = Filled(Color{1, 1, 1})
	}
	for _, x := range except {
		b.Cells[y][x] = Empty
	}
}
