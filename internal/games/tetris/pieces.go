package tetris

import "github.com/termcade/termcade/internal/core"

// PieceKind identifies one of the seven tetrominoes.
type PieceKind int

const (
	PieceI PieceKind = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	pieceCount
)

// pieceColors maps kind to render color.
var pieceColors = [pieceCount]core.Color{
	core.ColorBrightCyan,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightGreen,
	core.ColorBrightRed,
	core.ColorBrightBlue,
	core.ColorYellow,
}

// baseCells defines each piece's blocks in rotation state 0, inside its
// bounding box (I uses 4x4, the rest 3x3; O is 2x2 and never rotates).
var baseCells = [pieceCount][4]core.Vec{
	PieceI: {{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
	PieceO: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	PieceT: {{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	PieceS: {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	PieceZ: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	PieceJ: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	PieceL: {{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
}

// boxSize returns the rotation bounding box edge for a piece kind.
func boxSize(k PieceKind) int {
	switch k {
	case PieceI:
		return 4
	case PieceO:
		return 2
	default:
		return 3
	}
}

// rotations holds all four rotation states per piece, precomputed.
var rotations [pieceCount][4][4]core.Vec

func init() {
	for k := PieceKind(0); k < pieceCount; k++ {
		rotations[k][0] = baseCells[k]
		size := boxSize(k)
		for r := 1; r < 4; r++ {
			for i, c := range rotations[k][r-1] {
				// Clockwise rotation inside the bounding box
				rotations[k][r][i] = core.Vec{X: size - 1 - c.Y, Y: c.X}
			}
		}
	}
}

// cellsFor returns the block offsets for a piece kind and rotation state.
// The O piece has a single state.
func cellsFor(k PieceKind, rot int) [4]core.Vec {
	if k == PieceO {
		return rotations[k][0]
	}
	return rotations[k][rot&3]
}

// Piece is the falling tetromino.
type Piece struct {
	Kind PieceKind
	X, Y int // grid position of the bounding box's top-left
	Rot  int
}

// Cells returns the absolute grid cells the piece occupies.
func (p Piece) Cells() [4]core.Vec {
	var out [4]core.Vec
	for i, c := range cellsFor(p.Kind, p.Rot) {
		out[i] = core.Vec{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}
