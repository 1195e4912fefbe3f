package tetris

import (
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/pkg/errors"
)

// Plan is the result of one autoplay search.
type Plan struct {
	// Actions replays the placement through ProcessAction. It always ends in
	// HardDrop and is never empty.
	Actions []Action
	Grade   float32
	// Cells is where the piece lands.
	Cells    [4]Point[int]
	Rotation int
	// Tuck is set when the placement slides under an overhang.
	Tuck bool
	// Candidates is the number of distinct placements graded.
	Candidates int
}

// AutoplayActions returns the action sequence of the best placement.
func (g *Game) AutoplayActions() ([]Action, error) {
	p, err := g.Plan()
	return p.Actions, err
}

// Plan searches every rotation and reachable column of the active piece,
// plus the tucks reachable from each landing row, and returns the placement
// with the highest grade. The live game is never touched.
//
// Candidates are visited by rotation, then direction (stay, left, right),
// then move count, with tucks after every straight drop. Only a strictly
// better grade replaces the best, so ties keep the earliest candidate.
func (g *Game) Plan() (Plan, error) {
	return search(g.field)
}

type landing struct {
	field
	drop     int
	actions  []Action
	rotation int
}

type searcher struct {
	holesBefore int
	seen        *intmap.Map[uint32, float32]
	best        Plan
	found       bool
	candidates  int
}

func search(f field) (Plan, error) {
	s := searcher{
		holesBefore: f.board.Holes(),
		seen:        intmap.New[uint32, float32](128),
	}

	var landings []landing
	for _, o := range orientations(f) {
		landings = append(landings, s.straight(o.field, o.prefix, o.rotation))
		for _, dir := range [...]int{-1, 1} {
			pos := o.field
			moves := slices.Clone(o.prefix)
			for pos.move(dir) {
				moves = append(moves, Move{DX: dir})
				landings = append(landings, s.straight(pos, moves, o.rotation))
			}
		}
	}

	for _, l := range landings {
		s.tucks(l)
	}

	if !s.found {
		return Plan{Actions: []Action{HardDrop{}}}, errors.Wrapf(ErrNoPlacement,
			"%s at (%.1f, %.1f)", f.piece.Kind, f.piece.Anchor.X, f.piece.Anchor.Y)
	}
	s.best.Candidates = s.candidates
	return s.best, nil
}

type orientation struct {
	field
	prefix   []Action
	rotation int
}

// orientations returns the active piece in each quarter turn that fits,
// rotation ascending. A turn no kick can place is left out.
func orientations(f field) []orientation {
	var out []orientation
	for r := range 4 {
		o := orientation{field: f, rotation: r}
		switch {
		case r == 0 && !o.valid():
			continue
		case r > 0 && !o.rotate(r*90):
			continue
		case r > 0:
			o.prefix = []Action{Rotate{Degrees: r * 90}}
		}
		out = append(out, o)
	}
	return out
}

// straight grades a plain hard drop from pos and returns the landing for the
// tuck pass.
func (s *searcher) straight(pos field, moves []Action, rotation int) landing {
	l := landing{field: pos, rotation: rotation, actions: slices.Clone(moves)}
	l.drop = l.hardDrop()
	s.grade(l.field, append(slices.Clone(moves), HardDrop{}), rotation, false)
	return l
}

// tucks slides the landed piece sideways one column at a time and drops it
// again from each position.
func (s *searcher) tucks(l landing) {
	for _, dir := range [...]int{-1, 1} {
		pos := l.field
		seq := slices.Clone(l.actions)
		for range l.drop {
			seq = append(seq, SoftDrop{})
		}
		for pos.move(dir) {
			seq = append(seq, Move{DX: dir})
			final := pos
			final.hardDrop()
			s.grade(final, append(slices.Clone(seq), HardDrop{}), l.rotation, true)
		}
	}
}

func (s *searcher) grade(f field, actions []Action, rotation int, tuck bool) {
	cells := f.piece.Cells()
	key := packCells(cells)
	if _, ok := s.seen.Get(key); ok {
		return
	}

	b := f.board
	b.Lock(f.piece)
	lines := b.ClearFullRows()
	grade := b.Grade(s.holesBefore, lines)
	s.seen.Put(key, grade)
	s.candidates++

	if s.found && !(grade > s.best.Grade) {
		return
	}
	s.found = true
	s.best = Plan{
		Actions:  actions,
		Grade:    grade,
		Cells:    cells,
		Rotation: rotation,
		Tuck:     tuck,
	}
}

// packCells maps a set of four on-board cells to a key independent of the
// order the piece lists them in.
func packCells(cells [4]Point[int]) uint32 {
	var idx [4]int
	for i, c := range cells {
		idx[i] = c.Y*BoardWidth + c.X
	}
	slices.Sort(idx[:])

	var key uint32
	for _, i := range idx {
		key = key<<8 | uint32(i)
	}
	return key
}
