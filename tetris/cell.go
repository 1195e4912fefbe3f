package tetris

// Color is an RGB triple with components in [0, 1].
type Color [3]float32

// Lighten returns the color with delta added to every component, clamped to 1.
func (c Color) Lighten(delta float32) Color {
	for i := range c {
		c[i] = min(c[i]+delta, 1)
	}
	return c
}

// Cell is a single grid position: either empty or filled with a color.
// The zero value is an empty cell.
type Cell struct {
	filled bool
	color  Color
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// Filled returns an occupied cell rendered with color c.
func Filled(c Color) Cell {
	return Cell{filled: true, color: c}
}

func (c Cell) IsEmpty() bool  { return !c.filled }
func (c Cell) IsFilled() bool { return c.filled }

// Color returns the cell color and whether the cell is filled.
func (c Cell) Color() (Color, bool) {
	return c.color, c.filled
}
