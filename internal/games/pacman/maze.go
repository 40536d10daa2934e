package pacman

import "github.com/termcade/termcade/internal/core"

// Tile is one maze cell kind.
type Tile int

const (
	TileWall Tile = iota
	TileFloor
	TileHouse  // ghost house interior, no dots
	TileTunnel // horizontal wrap cell
)

// Layout characters: '#' wall, '.' dot, 'o' power pellet, ' ' bare floor,
// '=' house, 'T' tunnel, 'P' player spawn.
var defaultLayout = []string{
	"###################",
	"#o.......#.......o#",
	"#.##.###.#.###.##.#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#...#...#....#",
	"####.###.#.###.####",
	"#.................#",
	"T...##..===..##...T",
	"#...##.......##...#",
	"#.##.#.#####.#.##.#",
	"#....#...P...#....#",
	"#.##.###.#.###.##.#",
	"#o...............o#",
	"###################",
}

// Maze is the static grid plus the per-level dot state.
type Maze struct {
	W, H    int
	tiles   [][]Tile
	dots    [][]bool
	pellets [][]bool

	DotsLeft   int
	PlayerHome core.Vec
	GhostHome  core.Vec
	houseCells []core.Vec
}

// ParseMaze builds a maze from a string layout.
func ParseMaze(layout []string) *Maze {
	h := len(layout)
	w := len(layout[0])
	m := &Maze{W: w, H: h}

	m.tiles = make([][]Tile, h)
	m.dots = make([][]bool, h)
	m.pellets = make([][]bool, h)

	for y, row := range layout {
		m.tiles[y] = make([]Tile, w)
		m.dots[y] = make([]bool, w)
		m.pellets[y] = make([]bool, w)
		for x, ch := range row {
			switch ch {
			case '#':
				m.tiles[y][x] = TileWall
			case '.':
				m.tiles[y][x] = TileFloor
				m.dots[y][x] = true
				m.DotsLeft++
			case 'o':
				m.tiles[y][x] = TileFloor
				m.pellets[y][x] = true
				m.DotsLeft++
			case '=':
				m.tiles[y][x] = TileHouse
				m.houseCells = append(m.houseCells, core.Vec{X: x, Y: y})
			case 'T':
				m.tiles[y][x] = TileTunnel
			case 'P':
				m.tiles[y][x] = TileFloor
				m.PlayerHome = core.Vec{X: x, Y: y}
			default:
				m.tiles[y][x] = TileFloor
			}
		}
	}

	if len(m.houseCells) > 0 {
		m.GhostHome = m.houseCells[len(m.houseCells)/2]
	}
	return m
}

// Walkable reports whether an actor can occupy the cell.
func (m *Maze) Walkable(c core.Vec) bool {
	c = m.WrapCell(c)
	if c.X < 0 || c.X >= m.W || c.Y < 0 || c.Y >= m.H {
		return false
	}
	return m.tiles[c.Y][c.X] != TileWall
}

// WrapCell folds tunnel exits back onto the opposite edge.
func (m *Maze) WrapCell(c core.Vec) core.Vec {
	if c.X < 0 {
		c.X = m.W - 1
	}
	if c.X >= m.W {
		c.X = 0
	}
	return c
}

// EatAt consumes a dot or pellet at the cell. It returns the points
// scored and whether a power pellet was eaten.
func (m *Maze) EatAt(c core.Vec) (int, bool) {
	if c.Y < 0 || c.Y >= m.H || c.X < 0 || c.X >= m.W {
		return 0, false
	}
	if m.dots[c.Y][c.X] {
		m.dots[c.Y][c.X] = false
		m.DotsLeft--
		return dotPoints, false
	}
	if m.pellets[c.Y][c.X] {
		m.pellets[c.Y][c.X] = false
		m.DotsLeft--
		return pelletPoints, true
	}
	return 0, false
}

// DotAt reports whether a dot remains at the cell.
func (m *Maze) DotAt(c core.Vec) bool {
	return c.Y >= 0 && c.Y < m.H && c.X >= 0 && c.X < m.W && m.dots[c.Y][c.X]
}

// PelletAt reports whether a power pellet remains at the cell.
func (m *Maze) PelletAt(c core.Vec) bool {
	return c.Y >= 0 && c.Y < m.H && c.X >= 0 && c.X < m.W && m.pellets[c.Y][c.X]
}

// TileAt returns the tile kind at the cell.
func (m *Maze) TileAt(c core.Vec) Tile {
	if c.X < 0 || c.X >= m.W || c.Y < 0 || c.Y >= m.H {
		return TileWall
	}
	return m.tiles[c.Y][c.X]
}
