package tetris

import "github.com/pkg/errors"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	I Kind = iota
	O
	S
	Z
	J
	L
	T
)

// KindCount is the number of distinct kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "S", "Z", "J", "L", "T"}

// KindFromIndex converts an index in 0..6 into a Kind.
func KindFromIndex(i int) (Kind, error) {
	if i < 0 || i >= KindCount {
		return 0, errors.Wrapf(ErrUnknownKind, "index %d", i)
	}
	return Kind(i), nil
}

// Kinds returns all kinds in index order.
func Kinds() [KindCount]Kind {
	return [KindCount]Kind{I, O, S, Z, J, L, T}
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return kindNames[k]
}

// shape is the spawn definition of a kind.
type shape struct {
	points [4]Point[float32]
	anchor Point[float32]
	color  Color
}

var shapes = [KindCount]shape{
	I: {
		points: [4]Point[float32]{{-1.5, -0.5}, {-0.5, -0.5}, {0.5, -0.5}, {1.5, -0.5}},
		anchor: Point[float32]{4.5, 0.5},
		color:  Color{0.19, 0.65, 0.80},
	},
	O: {
		points: [4]Point[float32]{{-0.5, -0.5}, {-0.5, 0.5}, {0.5, -0.5}, {0.5, 0.5}},
		anchor: Point[float32]{4.5, 0.5},
		color:  Color{0.80, 0.70, 0.03},
	},
	S: {
		points: [4]Point[float32]{{1, -1}, {0, -1}, {0, 0}, {-1, 0}},
		anchor: Point[float32]{4, 1},
		color:  Color{0.26, 0.71, 0.26},
	},
	Z: {
		points: [4]Point[float32]{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		anchor: Point[float32]{4, 1},
		color:  Color{0.80, 0.13, 0.16},
	},
	J: {
		points: [4]Point[float32]{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		anchor: Point[float32]{4, 1},
		color:  Color{0.35, 0.40, 0.68},
	},
	L: {
		points: [4]Point[float32]{{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		anchor: Point[float32]{4, 1},
		color:  Color{0.80, 0.40, 0.10},
	},
	T: {
		points: [4]Point[float32]{{0, 1}, {-1, 0}, {0, 0}, {1, 0}},
		anchor: Point[float32]{4, 0},
		color:  Color{0.68, 0.30, 0.61},
	},
}

// Color returns the fixed render color of k.
func (k Kind) Color() Color {
	if !k.Valid() {
		return Color{}
	}
	return shapes[k].color
}
