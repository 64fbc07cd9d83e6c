package engine

import "fmt"

// Piece identifies a tetromino. The zero value doubles as the empty cell, so a
// Piece is also the value stored in every board cell. Identities 1-7 are a
// stable contract that renderers map to colors.
type Piece uint8

const (
	Empty  Piece = iota
	LeftL        // leftward L, hook on the top left
	RightZ       // rightward Z
	Bar          // long straight piece
	Bump         // bump in the middle
	L            // L, hook on the top right
	Z            // Z
	Square       // 2x2 square
)

// PieceCount is the number of distinct tetrominoes.
const PieceCount = 7

// Point is an absolute board coordinate, or a delta between two of them.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Coords holds the four blocks of a tetromino.
type Coords [4]Point

// Contains reports whether pt is one of the four blocks.
func (c Coords) Contains(pt Point) bool {
	for _, b := range c {
		if b == pt {
			return true
		}
	}
	return false
}

// Translate returns c with every block moved by (dx, dy).
func (c Coords) Translate(dx, dy int) Coords {
	d := Point{X: dx, Y: dy}
	for i := range c {
		c[i] = c[i].Add(d)
	}
	return c
}

// Offset applies a per-block delta table to c.
func (c Coords) Offset(deltas Coords) Coords {
	for i := range c {
		c[i] = c[i].Add(deltas[i])
	}
	return c
}

// startingOffsets are relative to the spawn column (board width / 2) and row 0.
var startingOffsets = [PieceCount]Coords{
	LeftL - 1:  {{-1, 0}, {-1, 1}, {0, 1}, {1, 1}},
	RightZ - 1: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
	Bar - 1:    {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
	Bump - 1:   {{-1, 1}, {0, 1}, {0, 0}, {1, 1}},
	L - 1:      {{-1, 1}, {0, 1}, {1, 1}, {1, 0}},
	Z - 1:      {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	Square - 1: {{-1, 0}, {-1, 1}, {0, 0}, {0, 1}},
}

// rotationDeltas[piece][o] moves each block from orientation o to (o+1)%4.
// Every block's four deltas sum to zero, so four rotations are the identity.
// RightZ, Z and Bar only have two visually distinct states; Square has one.
var rotationDeltas = [PieceCount][4]Coords{
	LeftL - 1: {
		{{0, 2}, {1, 1}, {0, 0}, {-1, -1}},
		{{2, 0}, {1, -1}, {0, 0}, {-1, 1}},
		{{0, -2}, {-1, -1}, {0, 0}, {1, 1}},
		{{-2, 0}, {-1, 1}, {0, 0}, {1, -1}},
	},
	RightZ - 1: {
		{{1, 0}, {0, 1}, {-1, 0}, {-2, 1}},
		{{-1, 0}, {0, -1}, {1, 0}, {2, -1}},
		{{1, 0}, {0, 1}, {-1, 0}, {-2, 1}},
		{{-1, 0}, {0, -1}, {1, 0}, {2, -1}},
	},
	Bar - 1: {
		{{2, -2}, {1, -1}, {0, 0}, {-1, 1}},
		{{-2, 2}, {-1, 1}, {0, 0}, {1, -1}},
		{{2, -2}, {1, -1}, {0, 0}, {-1, 1}},
		{{-2, 2}, {-1, 1}, {0, 0}, {1, -1}},
	},
	Bump - 1: {
		{{1, 1}, {0, 0}, {-1, 1}, {-1, -1}},
		{{1, -1}, {0, 0}, {1, 1}, {-1, 1}},
		{{-1, -1}, {0, 0}, {1, -1}, {1, 1}},
		{{-1, 1}, {0, 0}, {-1, -1}, {1, -1}},
	},
	L - 1: {
		{{1, 1}, {0, 0}, {-1, -1}, {-2, 0}},
		{{1, -1}, {0, 0}, {-1, 1}, {0, 2}},
		{{-1, -1}, {0, 0}, {1, 1}, {2, 0}},
		{{-1, 1}, {0, 0}, {1, -1}, {0, -2}},
	},
	Z - 1: {
		{{1, 0}, {0, 1}, {-1, 0}, {-2, 1}},
		{{-1, 0}, {0, -1}, {1, 0}, {2, -1}},
		{{1, 0}, {0, 1}, {-1, 0}, {-2, 1}},
		{{-1, 0}, {0, -1}, {1, 0}, {2, -1}},
	},
	Square - 1: {},
}

var pieceNames = [...]string{
	Empty:  "Empty",
	LeftL:  "LeftL",
	RightZ: "RightZ",
	Bar:    "Bar",
	Bump:   "Bump",
	L:      "L",
	Z:      "Z",
	Square: "Square",
}

// Pieces returns every tetromino identity in ascending order.
func Pieces() []Piece {
	return []Piece{LeftL, RightZ, Bar, Bump, L, Z, Square}
}

// Valid reports whether p is one of the seven tetrominoes.
func (p Piece) Valid() bool {
	return p >= LeftL && p <= Square
}

func (p Piece) String() string {
	if int(p) < len(pieceNames) {
		return pieceNames[p]
	}
	return fmt.Sprintf("Piece(%d)", uint8(p))
}

// StartingOffsets returns the spawn layout of p relative to the spawn column.
// Front ends use it to draw the next-piece preview.
func (p Piece) StartingOffsets() (Coords, error) {
	if !p.Valid() {
		return Coords{}, fmt.Errorf("%w: %d", ErrInvalidPiece, p)
	}
	return startingOffsets[p-1], nil
}

// RotationDeltas returns the block deltas that advance p from orientation to
// orientation+1.
func (p Piece) RotationDeltas(orientation int) (Coords, error) {
	if !p.Valid() {
		return Coords{}, fmt.Errorf("%w: %d", ErrInvalidPiece, p)
	}
	return rotationDeltas[p-1][orientation&3], nil
}
