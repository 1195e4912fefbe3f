package tetris

import (
	"strings"

	"github.com/chewxy/math32"
)

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Grid is the cell matrix, indexed [row][column] with row 0 at the top.
type Grid [BoardHeight][BoardWidth]Cell

// Board holds the locked cells and the weights used to grade them.
type Board struct {
	Cells   Grid
	Weights Weights
}

// NewBoard returns an empty board graded with w.
func NewBoard(w Weights) Board {
	return Board{Weights: w}
}

// Clear empties every cell and keeps the weights.
func (b *Board) Clear() {
	b.Cells = Grid{}
}

// IsValid reports whether every cell of t lies on the board and is empty.
func (b *Board) IsValid(t Tetromino) bool {
	for _, p := range t.Cells() {
		if p.X < 0 || p.X >= BoardWidth || p.Y < 0 || p.Y >= BoardHeight {
			return false
		}
		if b.Cells[p.Y][p.X].IsFilled() {
			return false
		}
	}
	return true
}

// Lock writes the cells of t into the board with its color.
func (b *Board) Lock(t Tetromino) {
	for _, p := range t.Cells() {
		if p.X < 0 || p.X >= BoardWidth || p.Y < 0 || p.Y >= BoardHeight {
			continue
		}
		b.Cells[p.Y][p.X] = Filled(t.Color)
	}
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.Cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// FullRows counts rows without an empty cell.
func (b *Board) FullRows() int {
	var n int
	for y := range BoardHeight {
		if b.rowFull(y) {
			n++
		}
	}
	return n
}

// ClearFullRows removes every full row, scanning top to bottom. Rows above a
// removed row shift down by one and an empty row is inserted at the top.
func (b *Board) ClearFullRows() int {
	var n int
	for y := range BoardHeight {
		if !b.rowFull(y) {
			continue
		}
		copy(b.Cells[1:y+1], b.Cells[:y])
		b.Cells[0] = [BoardWidth]Cell{}
		n++
	}
	return n
}

// ColumnHeight is 20 minus the number of leading empty rows in column x.
func (b *Board) ColumnHeight(x int) int {
	h := BoardHeight
	for y := range BoardHeight {
		if b.Cells[y][x].IsFilled() {
			break
		}
		h--
	}
	return h
}

func (b *Board) Heights() [BoardWidth]int {
	var hs [BoardWidth]int
	for x := range BoardWidth {
		hs[x] = b.ColumnHeight(x)
	}
	return hs
}

func (b *Board) MaxHeight() int {
	var m int
	for _, h := range b.Heights() {
		m = max(m, h)
	}
	return m
}

// Bumpiness is the sum of absolute deviations of column heights from their mean.
func (b *Board) Bumpiness() float32 {
	hs := b.Heights()
	var total int
	for _, h := range hs {
		total += h
	}

	// Scaled by the width to stay in integers.
	var diff int
	for _, h := range hs {
		d := BoardWidth*h - total
		if d < 0 {
			d = -d
		}
		diff += d
	}
	return float32(diff) / BoardWidth
}

// Holes counts empty cells with a filled cell anywhere above them.
func (b *Board) Holes() int {
	var holes int
	for x := range BoardWidth {
		covered := false
		for y := range BoardHeight {
			switch {
			case b.Cells[y][x].IsFilled():
				covered = true
			case covered:
				holes++
			}
		}
	}
	return holes
}

// HorizontalHoles counts runs of empty cells bounded by filled cells on both
// sides within a row.
func (b *Board) HorizontalHoles() int {
	var runs int
	for y := range BoardHeight {
		seen, gap := false, false
		for _, c := range b.Cells[y] {
			if c.IsFilled() {
				if seen && gap {
					runs++
				}
				seen, gap = true, false
			} else if seen {
				gap = true
			}
		}
	}
	return runs
}

// Grade scores the board; higher is better. holesBefore is the hole count
// before the graded placement, lines the rows it cleared.
//
//	grade = (2·lines)^LineClear − bumpiness^HeightDifference − maxHeight^Height
//	        − (holes−holesBefore)^Holes − horizontalHoles^HorizontalHoles
//
// Powers preserve sign, so with non-negative weights every term is monotonic
// in its feature.
func (b *Board) Grade(holesBefore, lines int) float32 {
	w := b.Weights
	holes := float32(b.Holes() - holesBefore)
	return spow(float32(2*lines), w.LineClear) -
		spow(b.Bumpiness(), w.HeightDifference) -
		spow(float32(b.MaxHeight()), w.Height) -
		spow(holes, w.Holes) -
		spow(float32(b.HorizontalHoles()), w.HorizontalHoles)
}

func spow(x, w float32) float32 {
	switch {
	case x == 0:
		return 0
	case x < 0:
		return -math32.Pow(-x, w)
	default:
		return math32.Pow(x, w)
	}
}

const (
	strEmptyCell  = "  "
	strFilledCell = "██"
)

func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.Cells {
		for _, c := range row {
			if c.IsFilled() {
				sb.WriteString(strFilledCell)
			} else {
				sb.WriteString(strEmptyCell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
