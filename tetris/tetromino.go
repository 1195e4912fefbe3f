package tetris

import "github.com/chewxy/math32"

// snapEpsilon absorbs float32 drift when mapping piece points onto cells.
const snapEpsilon = 1e-3

// Tetromino is a piece: four offsets around an anchor in grid space.
// Rotation changes Points, translation changes Anchor.
type Tetromino struct {
	Points [4]Point[float32]
	Anchor Point[float32]
	Color  Color
	Kind   Kind
}

// NewTetromino returns k at its spawn position and orientation. k must be
// Valid; convert untrusted indices with KindFromIndex first. An invalid kind
// yields a piece placed off the board, which Board.IsValid always rejects.
func NewTetromino(k Kind) Tetromino {
	if !k.Valid() {
		return Tetromino{Anchor: Point[float32]{-BoardWidth, -BoardHeight}, Kind: k}
	}
	s := shapes[k]
	return Tetromino{
		Points: s.points,
		Anchor: s.anchor,
		Color:  s.color,
		Kind:   k,
	}
}

// Rotate turns the piece around its anchor by degrees. Each rotated coordinate
// is snapped to one decimal place so repeated rotations stay on the sub-grid.
func (t *Tetromino) Rotate(degrees int) {
	rad := float32(degrees) * math32.Pi / 180
	sin, cos := math32.Sin(rad), math32.Cos(rad)
	for i, p := range t.Points {
		t.Points[i] = Point[float32]{
			X: roundTenth(p.X*cos - p.Y*sin),
			Y: roundTenth(p.X*sin + p.Y*cos),
		}
	}
}

// Translate moves the anchor by whole cells.
func (t *Tetromino) Translate(dx, dy int) {
	t.Anchor.X += float32(dx)
	t.Anchor.Y += float32(dy)
}

// Cells returns the grid cells covered by the piece.
func (t Tetromino) Cells() [4]Point[int] {
	var cells [4]Point[int]
	for i, p := range t.Points {
		cells[i] = Point[int]{
			X: int(math32.Floor(p.X + t.Anchor.X + snapEpsilon)),
			Y: int(math32.Floor(p.Y + t.Anchor.Y + snapEpsilon)),
		}
	}
	return cells
}

func roundTenth(v float32) float32 {
	if v < 0 {
		return -math32.Floor(-v*10+0.5) / 10
	}
	return math32.Floor(v*10+0.5) / 10
}
