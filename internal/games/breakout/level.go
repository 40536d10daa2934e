package breakout

import "github.com/termcade/termcade/internal/core"

// rowColors cycles per brick row, top rows worth more points.
var rowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// buildLevel fills the brick field with the pattern for the current level.
// Patterns cycle: checkerboard, border, diagonal, random.
func (g *Game) buildLevel() {
	g.bricks = nil

	cols := (g.runtime.ScreenW - 4) / brickW
	rows := core.Clamp(g.runtime.ScreenH/4, 4, 7)
	offsetX := (g.runtime.ScreenW - cols*brickW) / 2
	offsetY := 2

	pattern := (g.Level() - 1) % 4

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !g.cellFilled(pattern, row, col, rows, cols) {
				continue
			}
			g.bricks = append(g.bricks, Brick{
				X:      offsetX + col*brickW,
				Y:      offsetY + row*brickH,
				W:      brickW,
				H:      brickH,
				Points: (rows - row) * 10,
				Color:  rowColors[row%len(rowColors)],
			})
		}
	}
}

// cellFilled decides whether a grid cell holds a brick for the pattern.
func (g *Game) cellFilled(pattern, row, col, rows, cols int) bool {
	switch pattern {
	case 0: // checkerboard
		return (row+col)%2 == 0
	case 1: // border only
		return row == 0 || row == rows-1 || col == 0 || col == cols-1
	case 2: // diagonal density: more bricks toward the down-right diagonal
		return (row+col)%3 != 0
	default: // random fill, about 70%
		return g.rng.Intn(100) < 70
	}
}
