// Package asteroids implements a free-movement shooter on a wrapping
// field. The ship thrusts along its heading with per-tick friction and a
// speed cap; asteroids split into two smaller fragments until the smallest
// tier. The invincibility window after spawn or hyperspace suppresses
// ship-vs-hazard collisions only.
package asteroids

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/engine"
	"github.com/termcade/termcade/internal/registry"
)

const (
	thrustAccel   = 0.02
	friction      = 0.992
	maxSpeed      = 0.7
	turnRate      = 0.09
	wrapMargin    = 2.0
	muzzleSpeed   = 0.9
	bulletLife    = 50 // ticks
	invulnTicks   = 120
	hyperCooldown = 60

	ufoFireEvery = 90
	ufoPoints    = 200
	ufoSpeedX    = 0.15
	ufoInterval  = 1200

	startAsteroids = 4
)

// Size is an asteroid tier.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// sizePoints maps tier to score value; smaller rocks are worth more.
var sizePoints = [3]int{100, 50, 20}

// sizeRadius maps tier to collision radius in cells.
var sizeRadius = [3]float64{0.8, 1.6, 2.6}

// sizeSpeed maps tier to base drift speed; fragments fly faster.
var sizeSpeed = [3]float64{0.22, 0.15, 0.09}

// Asteroid is one drifting rock. Verts are polar offsets used only for
// rendering.
type Asteroid struct {
	X, Y   float64
	VX, VY float64
	Size   Size
	Verts  []core.Vec
}

// Bullet is a projectile fired by the ship or the UFO.
type Bullet struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	Hostile bool
}

// Game implements the Asteroids game logic.
type Game struct {
	engine.Base

	rng *rand.Rand

	shipX, shipY   float64
	shipVX, shipVY float64
	heading        float64
	invuln         int
	hyperTimer     int

	asteroids []Asteroid
	bullets   []Bullet

	ufoLive    bool
	ufoX, ufoY float64
	ufoDir     float64
	ufoFire    int
	ufoTick    int

	runtime core.RuntimeConfig
}

// New creates a new Asteroids game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.bullets = nil
	g.ufoLive = false
	g.ufoTick = 0

	g.Restart(3)
	g.respawnShip()
	g.spawnWave()
}

// respawnShip centers the ship and grants the invincibility window.
func (g *Game) respawnShip() {
	g.shipX = float64(g.runtime.ScreenW) / 2.0
	g.shipY = float64(g.runtime.ScreenH) / 2.0
	g.shipVX = 0
	g.shipVY = 0
	g.heading = -math.Pi / 2
	g.invuln = invulnTicks
}

// spawnWave scatters asteroids away from the ship; later waves add more.
func (g *Game) spawnWave() {
	g.asteroids = nil
	count := startAsteroids + g.Level() - 1
	for i := 0; i < count; i++ {
		var x, y float64
		for {
			x = g.rng.Float64() * float64(g.runtime.ScreenW)
			y = g.rng.Float64() * float64(g.runtime.ScreenH)
			dx := x - g.shipX
			dy := y - g.shipY
			if dx*dx+dy*dy > 64 {
				break
			}
		}
		g.asteroids = append(g.asteroids, g.makeAsteroid(x, y, SizeLarge))
	}
}

// makeAsteroid builds a rock with a random heading and jittered outline.
func (g *Game) makeAsteroid(x, y float64, size Size) Asteroid {
	angle := g.rng.Float64() * 2 * math.Pi
	speed := sizeSpeed[size] * (0.7 + 0.6*g.rng.Float64())

	verts := make([]core.Vec, 0, 8)
	r := sizeRadius[size]
	for i := 0; i < 8; i++ {
		a := float64(i) / 8 * 2 * math.Pi
		jr := r * (0.7 + 0.5*g.rng.Float64())
		verts = append(verts, core.Vec{
			X: int(math.Round(math.Cos(a) * jr)),
			Y: int(math.Round(math.Sin(a) * jr / 2)), // terminal cells are tall
		})
	}

	return Asteroid{
		X: x, Y: y,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle) * speed,
		Size:  size,
		Verts: verts,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.JustPressed(core.ActionRestart) && g.Over() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return g.Result()
	}

	if in.JustPressed(core.ActionPause) {
		g.TogglePause()
	}

	if !g.Running() {
		return g.Result()
	}

	if g.invuln > 0 {
		g.invuln--
	}
	if g.hyperTimer > 0 {
		g.hyperTimer--
	}

	g.steerShip(in)
	g.moveShip()
	g.updateBullets()
	g.moveAsteroids()
	g.updateUFO()
	g.resolveCollisions()

	if len(g.asteroids) == 0 && g.Running() {
		g.NextLevel()
		g.spawnWave()
	}

	return g.Result()
}

// steerShip handles rotation, thrust, fire, and hyperspace.
func (g *Game) steerShip(in core.InputFrame) {
	if in.Pressed(core.ActionLeft) {
		g.heading -= turnRate
	}
	if in.Pressed(core.ActionRight) {
		g.heading += turnRate
	}
	if in.Pressed(core.ActionUp) {
		g.shipVX += math.Cos(g.heading) * thrustAccel
		g.shipVY += math.Sin(g.heading) * thrustAccel
	}

	if in.JustPressed(core.ActionFire) {
		g.fire()
	}
	if in.JustPressed(core.ActionAlt) && g.hyperTimer == 0 {
		g.hyperspace()
	}
}

// fire spawns a bullet inheriting half the ship's velocity.
func (g *Game) fire() {
	g.bullets = append(g.bullets, Bullet{
		X:    g.shipX,
		Y:    g.shipY,
		VX:   math.Cos(g.heading)*muzzleSpeed + g.shipVX/2,
		VY:   math.Sin(g.heading)*muzzleSpeed + g.shipVY/2,
		Life: bulletLife,
	})
	g.Play(core.SoundHit)
}

// hyperspace teleports the ship to a random cell with a fresh
// invincibility window.
func (g *Game) hyperspace() {
	g.shipX = g.rng.Float64() * float64(g.runtime.ScreenW)
	g.shipY = g.rng.Float64() * float64(g.runtime.ScreenH)
	g.shipVX = 0
	g.shipVY = 0
	g.invuln = invulnTicks
	g.hyperTimer = hyperCooldown
	g.Play(core.SoundPowerUp)
}

// moveShip applies friction, the speed cap, and wrapping.
func (g *Game) moveShip() {
	g.shipVX *= friction
	g.shipVY *= friction

	speed := math.Hypot(g.shipVX, g.shipVY)
	if speed > maxSpeed {
		g.shipVX = g.shipVX / speed * maxSpeed
		g.shipVY = g.shipVY / speed * maxSpeed
	}

	g.shipX, g.shipY = g.wrap(g.shipX+g.shipVX, g.shipY+g.shipVY)
}

// wrap folds a position back onto the field with a margin past each edge.
func (g *Game) wrap(x, y float64) (float64, float64) {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)
	if x < -wrapMargin {
		x += w + 2*wrapMargin
	}
	if x > w+wrapMargin {
		x -= w + 2*wrapMargin
	}
	if y < -wrapMargin {
		y += h + 2*wrapMargin
	}
	if y > h+wrapMargin {
		y -= h + 2*wrapMargin
	}
	return x, y
}

// updateBullets advances bullets, expiring them by tick lifetime.
func (g *Game) updateBullets() {
	alive := g.bullets[:0]
	for _, b := range g.bullets {
		b.Life--
		if b.Life <= 0 {
			continue
		}
		b.X, b.Y = g.wrap(b.X+b.VX, b.Y+b.VY)
		alive = append(alive, b)
	}
	g.bullets = alive
}

// moveAsteroids drifts every rock with wrapping.
func (g *Game) moveAsteroids() {
	for i := range g.asteroids {
		a := &g.asteroids[i]
		a.X, a.Y = g.wrap(a.X+a.VX, a.Y+a.VY)
	}
}

// updateUFO schedules the saucer, slides it across, and fires at the ship.
func (g *Game) updateUFO() {
	if !g.ufoLive {
		g.ufoTick++
		if g.ufoTick >= ufoInterval {
			g.ufoTick = 0
			g.ufoLive = true
			g.ufoDir = 1
			g.ufoX = 0
			if g.rng.Intn(2) == 0 {
				g.ufoDir = -1
				g.ufoX = float64(g.runtime.ScreenW - 1)
			}
			g.ufoY = 2 + g.rng.Float64()*float64(g.runtime.ScreenH-4)
			g.ufoFire = ufoFireEvery
		}
		return
	}

	g.ufoX += g.ufoDir * ufoSpeedX
	if g.ufoX < -1 || g.ufoX > float64(g.runtime.ScreenW) {
		g.ufoLive = false
		return
	}

	g.ufoFire--
	if g.ufoFire <= 0 {
		g.ufoFire = ufoFireEvery
		angle := math.Atan2(g.shipY-g.ufoY, g.shipX-g.ufoX)
		g.bullets = append(g.bullets, Bullet{
			X: g.ufoX, Y: g.ufoY,
			VX:      math.Cos(angle) * 0.4,
			VY:      math.Sin(angle) * 0.4,
			Life:    bulletLife * 2,
			Hostile: true,
		})
	}
}

// splitAsteroid replaces rock i with two fragments of the next tier down,
// or removes it entirely at the smallest tier.
func (g *Game) splitAsteroid(i int) {
	a := g.asteroids[i]
	g.AddScore(sizePoints[a.Size])
	g.Play(core.SoundExplosion)

	g.asteroids = append(g.asteroids[:i], g.asteroids[i+1:]...)

	if a.Size == SizeSmall {
		return
	}
	next := a.Size - 1
	for k := 0; k < 2; k++ {
		frag := g.makeAsteroid(a.X, a.Y, next)
		g.asteroids = append(g.asteroids, frag)
	}
}

// resolveCollisions handles bullet-vs-hazard and ship-vs-hazard contact.
// Bullets always hit; the ship is skipped while invincible.
func (g *Game) resolveCollisions() {
	// Player bullets vs asteroids and UFO
	surviving := g.bullets[:0]
	for _, b := range g.bullets {
		spent := false
		if !b.Hostile {
			for i := range g.asteroids {
				a := &g.asteroids[i]
				if dist2(b.X, b.Y, a.X, a.Y) <= sizeRadius[a.Size]*sizeRadius[a.Size] {
					g.splitAsteroid(i)
					spent = true
					break
				}
			}
			if !spent && g.ufoLive && dist2(b.X, b.Y, g.ufoX, g.ufoY) <= 2.25 {
				g.ufoLive = false
				g.AddScore(ufoPoints)
				g.Play(core.SoundExplosion)
				spent = true
			}
		}
		if !spent {
			surviving = append(surviving, b)
		}
	}
	g.bullets = surviving

	if g.invuln > 0 {
		return
	}

	// Ship vs asteroids
	for i := range g.asteroids {
		a := &g.asteroids[i]
		r := sizeRadius[a.Size] + 0.5
		if dist2(g.shipX, g.shipY, a.X, a.Y) <= r*r {
			g.shipHit()
			return
		}
	}

	// Ship vs hostile bullets and the saucer itself
	for _, b := range g.bullets {
		if b.Hostile && dist2(g.shipX, g.shipY, b.X, b.Y) <= 1.0 {
			g.shipHit()
			return
		}
	}
	if g.ufoLive && dist2(g.shipX, g.shipY, g.ufoX, g.ufoY) <= 2.25 {
		g.shipHit()
	}
}

func (g *Game) shipHit() {
	if g.LoseLife() {
		g.respawnShip()
	}
}

func dist2(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, a := range g.asteroids {
		for _, v := range a.Verts {
			dst.SetColored(int(a.X)+v.X, int(a.Y)+v.Y, '#', core.ColorGray)
		}
	}

	for _, b := range g.bullets {
		ch := '·'
		color := core.ColorBrightWhite
		if b.Hostile {
			ch = '*'
			color = core.ColorBrightRed
		}
		dst.SetColored(int(b.X), int(b.Y), ch, color)
	}

	if g.ufoLive {
		dst.SetColored(int(g.ufoX), int(g.ufoY), '◄', core.ColorBrightMagenta)
	}

	// Ship blinks while invincible
	if g.invuln == 0 || (g.invuln/6)%2 == 0 {
		dst.SetColored(int(g.shipX), int(g.shipY), g.shipGlyph(), core.ColorBrightCyan)
	}

	dst.DrawText(2, 0, fmt.Sprintf("Score: %d  Lives: %d  Wave: %d",
		g.Score(), g.Lives(), g.Level()))

	if g.State().Paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - Press P to resume")
	}
	if g.Over() {
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("GAME OVER - Score: %d - Press R to restart", g.Score()))
	}
}

// shipGlyph picks an arrow matching the current heading quadrant.
func (g *Game) shipGlyph() rune {
	a := math.Mod(g.heading+2*math.Pi, 2*math.Pi)
	switch {
	case a < math.Pi/4 || a >= 7*math.Pi/4:
		return '▶'
	case a < 3*math.Pi/4:
		return '▼'
	case a < 5*math.Pi/4:
		return '◀'
	default:
		return '▲'
	}
}
