package rogue

import (
	"math/rand"

	"github.com/termcade/termcade/internal/core"
)

// EnemyKind indexes the enemy roster.
type EnemyKind int

const (
	EnemyRat EnemyKind = iota
	EnemyGoblin
	EnemySkeleton
	EnemyWraith // phases through walls
	EnemyBoss
)

// enemyStats is the base roster. Wraiths ignore walls when moving but
// never stack onto occupied cells.
var enemyStats = map[EnemyKind]struct {
	Name    string
	Glyph   rune
	Color   core.Color
	HP      int
	Attack  int
	Points  int
	Phasing bool
}{
	EnemyRat:      {"rat", 'r', core.ColorYellow, 3, 2, 10, false},
	EnemyGoblin:   {"goblin", 'g', core.ColorGreen, 6, 3, 25, false},
	EnemySkeleton: {"skeleton", 's', core.ColorWhite, 9, 4, 40, false},
	EnemyWraith:   {"wraith", 'w', core.ColorBrightMagenta, 5, 3, 60, true},
	EnemyBoss:     {"dungeon lord", 'D', core.ColorBrightRed, 30, 6, 500, false},
}

// floorRoster returns the enemy kinds eligible to spawn on a floor
// (1-based).
func floorRoster(floor int) []EnemyKind {
	switch {
	case floor <= 1:
		return []EnemyKind{EnemyRat}
	case floor == 2:
		return []EnemyKind{EnemyRat, EnemyGoblin}
	case floor == 3:
		return []EnemyKind{EnemyGoblin, EnemySkeleton}
	default:
		return []EnemyKind{EnemyGoblin, EnemySkeleton, EnemyWraith}
	}
}

// Enemy is one hostile actor on the current floor.
type Enemy struct {
	Kind    EnemyKind
	Pos     core.Vec
	HP      int
	Phasing bool
}

// ItemKind indexes the pickup roster.
type ItemKind int

const (
	ItemPotion ItemKind = iota
	ItemWeapon
	ItemArmor
)

// Item is a pickup lying on the floor.
type Item struct {
	Kind ItemKind
	Pos  core.Vec
}

// attackDamage applies the damage formula: attack minus defense, floored
// at 1.
func attackDamage(attack, defense int) int {
	return core.Max(attack-defense, 1)
}

// playerAttack resolves the player striking enemy i. Returns true when
// the enemy dies.
func (g *Game) playerAttack(i int) bool {
	e := &g.enemies[i]
	e.HP -= attackDamage(g.attack, 0)
	g.Play(core.SoundHit)

	if e.HP > 0 {
		return false
	}

	stats := enemyStats[e.Kind]
	g.AddScore(stats.Points)
	g.Play(core.SoundExplosion)

	if e.Kind == EnemyBoss {
		g.victory = true
		g.GameOver()
	}
	g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
	return true
}

// enemyTurn moves or attacks with every enemy. Adjacent enemies strike;
// the rest step toward the player only while visible, shrinking the
// larger axis first. Walls block non-phasing movement; occupied cells
// block everyone.
func (g *Game) enemyTurn() {
	for i := range g.enemies {
		e := &g.enemies[i]

		if core.Manhattan(e.Pos, g.playerPos) == 1 {
			dmg := attackDamage(enemyStats[e.Kind].Attack, g.defense)
			g.hp -= dmg
			g.Play(core.SoundHit)
			if g.hp <= 0 {
				g.hp = 0
				g.GameOver()
				return
			}
			continue
		}

		if !g.floor.Visible(e.Pos) {
			continue
		}

		step := greedyStep(e.Pos, g.playerPos)
		dest := e.Pos.Add(step)
		if !e.Phasing && !g.floor.Walkable(dest) {
			continue
		}
		if g.occupied(dest) {
			continue
		}
		e.Pos = dest
	}
}

// greedyStep returns the unit step shrinking the larger of |dx|, |dy|.
func greedyStep(from, to core.Vec) core.Vec {
	dx := to.X - from.X
	dy := to.Y - from.Y

	if core.Abs(dx) >= core.Abs(dy) {
		return core.Vec{X: sign(dx), Y: 0}
	}
	return core.Vec{X: 0, Y: sign(dy)}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// occupied reports whether any actor stands on the cell.
func (g *Game) occupied(c core.Vec) bool {
	if c == g.playerPos {
		return true
	}
	for i := range g.enemies {
		if g.enemies[i].Pos == c {
			return true
		}
	}
	return false
}

// enemyAt returns the index of the enemy on the cell, or -1.
func (g *Game) enemyAt(c core.Vec) int {
	for i := range g.enemies {
		if g.enemies[i].Pos == c {
			return i
		}
	}
	return -1
}

// spawnEnemies populates the floor: count scales with depth, the roster
// deepens, and the final floor holds exactly one boss.
func (g *Game) spawnEnemies(rng *rand.Rand) {
	g.enemies = nil
	taken := map[core.Vec]bool{g.playerPos: true}

	if g.floorNum == g.cfg.Map.Floors {
		pos := g.floor.randomFloorCell(rng, taken)
		taken[pos] = true
		boss := enemyStats[EnemyBoss]
		g.enemies = append(g.enemies, Enemy{Kind: EnemyBoss, Pos: pos, HP: boss.HP})
	}

	roster := floorRoster(g.floorNum)
	count := 2 + g.floorNum + g.diff.ExtraEnemies(g.Score(), 0)
	for i := 0; i < count; i++ {
		kind := roster[rng.Intn(len(roster))]
		pos := g.floor.randomFloorCell(rng, taken)
		taken[pos] = true
		g.enemies = append(g.enemies, Enemy{
			Kind:    kind,
			Pos:     pos,
			HP:      enemyStats[kind].HP,
			Phasing: enemyStats[kind].Phasing,
		})
	}
}

// spawnItems scatters pickups around the floor.
func (g *Game) spawnItems(rng *rand.Rand) {
	g.items = nil
	taken := map[core.Vec]bool{g.playerPos: true}
	for i := range g.enemies {
		taken[g.enemies[i].Pos] = true
	}

	count := 2 + rng.Intn(3)
	for i := 0; i < count; i++ {
		pos := g.floor.randomFloorCell(rng, taken)
		taken[pos] = true
		g.items = append(g.items, Item{
			Kind: ItemKind(rng.Intn(3)),
			Pos:  pos,
		})
	}
}

// pickupAt applies and removes the item on the cell, if any.
func (g *Game) pickupAt(c core.Vec) {
	for i := range g.items {
		if g.items[i].Pos != c {
			continue
		}
		switch g.items[i].Kind {
		case ItemPotion:
			g.hp = core.Min(g.hp+8, g.maxHP)
		case ItemWeapon:
			g.attack += 2
		case ItemArmor:
			g.defense++
		}
		g.Play(core.SoundPowerUp)
		g.items = append(g.items[:i], g.items[i+1:]...)
		return
	}
}
