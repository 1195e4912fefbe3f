package tetris

// kicks are the anchor offsets tried, in order, when placing a rotated piece.
var kicks = [...]Point[int]{
	{0, 0}, {1, 0}, {-1, 0},
	{0, 1}, {1, 1}, {-1, 1},
	{0, -1}, {1, -1}, {-1, -1},
}

// field is the board plus the active piece: everything the movement rules
// read and write. It is a plain value so the planner can copy it freely.
type field struct {
	board Board
	piece Tetromino
}

func (f *field) valid() bool {
	return f.board.IsValid(f.piece)
}

func (f *field) canFall() bool {
	p := f.piece
	p.Translate(0, 1)
	return f.board.IsValid(p)
}

// dropDistance is the number of rows the piece can fall before colliding.
func (f *field) dropDistance() int {
	p := f.piece
	var n int
	for {
		p.Translate(0, 1)
		if !f.board.IsValid(p) {
			return n
		}
		n++
	}
}

func (f *field) move(dx int) bool {
	return f.shift(dx, 0)
}

func (f *field) fall() bool {
	return f.shift(0, 1)
}

func (f *field) shift(dx, dy int) bool {
	p := f.piece
	p.Translate(dx, dy)
	if !f.board.IsValid(p) {
		return false
	}
	f.piece = p
	return true
}

// rotate accepts the first kick that fits; otherwise the piece is unchanged.
func (f *field) rotate(degrees int) bool {
	r := f.piece
	r.Rotate(degrees)
	for _, k := range kicks {
		c := r
		c.Translate(k.X, k.Y)
		if f.board.IsValid(c) {
			f.piece = c
			return true
		}
	}
	return false
}

func (f *field) hardDrop() int {
	d := f.dropDistance()
	f.piece.Translate(0, d)
	return d
}
