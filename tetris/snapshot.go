package tetris

// GhostLighten is how much lighter the ghost piece is drawn than the active one.
const GhostLighten = 0.2

// Snapshot is a read-only copy of what a renderer draws.
type Snapshot struct {
	// Cells holds the locked cells with the ghost and then the active piece
	// drawn over them.
	Cells   Grid
	Piece   [4]Point[int]
	Ghost   [4]Point[int]
	Active  Kind
	Hold    Kind
	HasHold bool
	Next    Kind

	Lines    int
	Pieces   int
	Autoplay bool
}

// Snapshot captures the visible state. The ghost marks where a hard drop
// would land; it is left out of Cells when ghost is false.
func (g *Game) Snapshot(ghost bool) Snapshot {
	s := Snapshot{
		Cells:    g.board.Cells,
		Piece:    g.piece.Cells(),
		Active:   g.piece.Kind,
		Hold:     g.hold,
		HasHold:  g.hasHold,
		Next:     g.bag.Peek(),
		Lines:    g.lines,
		Pieces:   g.pieces,
		Autoplay: g.autoplay != nil,
	}

	landed := g.field
	landed.hardDrop()
	s.Ghost = landed.piece.Cells()

	if ghost {
		s.paint(s.Ghost, Filled(g.piece.Color.Lighten(GhostLighten)))
	}
	s.paint(s.Piece, Filled(g.piece.Color))
	return s
}

func (s *Snapshot) paint(cells [4]Point[int], c Cell) {
	for _, p := range cells {
		if p.X < 0 || p.X >= BoardWidth || p.Y < 0 || p.Y >= BoardHeight {
			continue
		}
		s.Cells[p.Y][p.X] = c
	}
}
