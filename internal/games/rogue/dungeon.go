package rogue

import (
	"math/rand"

	"github.com/termcade/termcade/internal/config"
	"github.com/termcade/termcade/internal/core"
)

// Tile is one dungeon cell kind.
type Tile int

const (
	TileWall Tile = iota
	TileFloor
	TileStairs
)

// Floor is a generated dungeon level.
type Floor struct {
	W, H     int
	tiles    [][]Tile
	rooms    []core.Rect
	visible  [][]bool
	explored [][]bool

	Stairs core.Vec
	Start  core.Vec
}

// generateFloor carves rooms and corridors. Each candidate room is
// rejected when its margin-expanded rect overlaps an accepted room; every
// accepted room is tunnelled to its predecessor, so the floor is connected
// by construction.
func generateFloor(cfg config.RogueMap, rng *rand.Rand) *Floor {
	f := &Floor{W: cfg.Width, H: cfg.Height}
	f.tiles = make([][]Tile, f.H)
	f.visible = make([][]bool, f.H)
	f.explored = make([][]bool, f.H)
	for y := range f.tiles {
		f.tiles[y] = make([]Tile, f.W)
		f.visible[y] = make([]bool, f.W)
		f.explored[y] = make([]bool, f.W)
	}

	target := cfg.MinRooms + rng.Intn(cfg.MaxRooms-cfg.MinRooms+1)
	attempts := 0
	for len(f.rooms) < target && attempts < 200 {
		attempts++

		w := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		h := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		x := 1 + rng.Intn(core.Max(f.W-w-2, 1))
		y := 1 + rng.Intn(core.Max(f.H-h-2, 1))
		room := core.NewRect(x, y, w, h)

		if f.overlapsAny(room.Expand(cfg.RoomMargin)) {
			continue
		}

		f.carveRoom(room)
		if len(f.rooms) > 0 {
			prev := f.rooms[len(f.rooms)-1]
			f.carveCorridor(prev, room, rng)
		}
		f.rooms = append(f.rooms, room)
	}

	first := f.rooms[0]
	last := f.rooms[len(f.rooms)-1]
	f.Start = centerOf(first)
	f.Stairs = centerOf(last)
	f.tiles[f.Stairs.Y][f.Stairs.X] = TileStairs

	return f
}

func centerOf(r core.Rect) core.Vec {
	x, y := r.Center()
	return core.Vec{X: x, Y: y}
}

// overlapsAny reports whether the expanded candidate touches any accepted
// room.
func (f *Floor) overlapsAny(expanded core.Rect) bool {
	for _, r := range f.rooms {
		if expanded.Intersects(r) {
			return true
		}
	}
	return false
}

func (f *Floor) carveRoom(r core.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if x > 0 && x < f.W-1 && y > 0 && y < f.H-1 {
				f.tiles[y][x] = TileFloor
			}
		}
	}
}

// carveCorridor digs a random L between two room centers.
func (f *Floor) carveCorridor(a, b core.Rect, rng *rand.Rand) {
	ac := centerOf(a)
	bc := centerOf(b)

	if rng.Intn(2) == 0 {
		f.carveH(ac.X, bc.X, ac.Y)
		f.carveV(ac.Y, bc.Y, bc.X)
	} else {
		f.carveV(ac.Y, bc.Y, ac.X)
		f.carveH(ac.X, bc.X, bc.Y)
	}
}

func (f *Floor) carveH(x1, x2, y int) {
	for x := core.Min(x1, x2); x <= core.Max(x1, x2); x++ {
		if x > 0 && x < f.W-1 && y > 0 && y < f.H-1 {
			f.tiles[y][x] = TileFloor
		}
	}
}

func (f *Floor) carveV(y1, y2, x int) {
	for y := core.Min(y1, y2); y <= core.Max(y1, y2); y++ {
		if x > 0 && x < f.W-1 && y > 0 && y < f.H-1 {
			f.tiles[y][x] = TileFloor
		}
	}
}

// Walkable reports whether the cell is floor or stairs.
func (f *Floor) Walkable(c core.Vec) bool {
	if c.X < 0 || c.X >= f.W || c.Y < 0 || c.Y >= f.H {
		return false
	}
	return f.tiles[c.Y][c.X] != TileWall
}

// TileAt returns the tile kind at the cell.
func (f *Floor) TileAt(c core.Vec) Tile {
	if c.X < 0 || c.X >= f.W || c.Y < 0 || c.Y >= f.H {
		return TileWall
	}
	return f.tiles[c.Y][c.X]
}

// Visible reports whether the cell is in the current field of view.
func (f *Floor) Visible(c core.Vec) bool {
	if c.X < 0 || c.X >= f.W || c.Y < 0 || c.Y >= f.H {
		return false
	}
	return f.visible[c.Y][c.X]
}

// Explored reports whether the cell has ever been seen on this floor.
func (f *Floor) Explored(c core.Vec) bool {
	if c.X < 0 || c.X >= f.W || c.Y < 0 || c.Y >= f.H {
		return false
	}
	return f.explored[c.Y][c.X]
}

// randomFloorCell returns a walkable cell not occupied by the given taken
// positions.
func (f *Floor) randomFloorCell(rng *rand.Rand, taken map[core.Vec]bool) core.Vec {
	for {
		room := f.rooms[rng.Intn(len(f.rooms))]
		c := core.Vec{
			X: room.X + rng.Intn(room.W),
			Y: room.Y + rng.Intn(room.H),
		}
		if f.Walkable(c) && !taken[c] && f.TileAt(c) != TileStairs {
			return c
		}
	}
}
