package breakout

import "github.com/termcade/termcade/internal/core"

// PowerUpType identifies one of the six powerup effects.
type PowerUpType int

const (
	PowerMultiball PowerUpType = iota
	PowerExpand
	PowerShrink
	PowerSlow
	PowerFast
	PowerLife

	powerUpCount
)

// Glyph returns the character rendered for this powerup.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerMultiball:
		return 'M'
	case PowerExpand:
		return '+'
	case PowerShrink:
		return '-'
	case PowerSlow:
		return 'S'
	case PowerFast:
		return 'F'
	case PowerLife:
		return '♥'
	}
	return '?'
}

// PowerUp is a capsule falling toward the paddle.
type PowerUp struct {
	X, Y float64
	Type PowerUpType
}

// spawnPowerUp drops a random powerup from a destroyed brick's position.
func (g *Game) spawnPowerUp(x, y float64) {
	g.powerups = append(g.powerups, PowerUp{
		X:    x,
		Y:    y,
		Type: PowerUpType(g.rng.Intn(int(powerUpCount))),
	})
}

// updatePowerUps advances falling powerups and applies the ones the
// paddle catches. Missed powerups disappear off the bottom.
func (g *Game) updatePowerUps() {
	alive := g.powerups[:0]
	for _, p := range g.powerups {
		p.Y += g.cfg.PowerUps.FallSpeed

		if int(p.Y) == g.paddleY &&
			p.X >= g.paddleX && p.X <= g.paddleX+float64(g.paddleWidth) {
			g.applyPowerUp(p.Type)
			continue
		}
		if p.Y >= float64(g.runtime.ScreenH-1) {
			continue
		}
		alive = append(alive, p)
	}
	g.powerups = alive
}

// applyPowerUp applies a caught powerup's effect.
func (g *Game) applyPowerUp(t PowerUpType) {
	g.Play(core.SoundPowerUp)

	switch t {
	case PowerMultiball:
		g.splitBalls()
	case PowerExpand:
		g.paddleWidth = core.Clamp(
			g.paddleWidth+g.cfg.Gameplay.PaddleGrowAmount,
			g.cfg.Paddle.MinWidth, g.cfg.Paddle.MaxWidth)
	case PowerShrink:
		g.paddleWidth = core.Clamp(
			g.paddleWidth-g.cfg.Gameplay.PaddleGrowAmount,
			g.cfg.Paddle.MinWidth, g.cfg.Paddle.MaxWidth)
	case PowerSlow:
		g.scaleBallSpeed(g.cfg.PowerUps.SlowFactor)
	case PowerFast:
		g.scaleBallSpeed(g.cfg.PowerUps.FastFactor)
	case PowerLife:
		g.GainLife()
	}
}

// splitBalls clones an in-flight ball with a mirrored horizontal velocity,
// up to the extra-ball cap.
func (g *Game) splitBalls() {
	if len(g.balls) >= 1+g.cfg.Gameplay.MaxExtraBalls {
		return
	}
	for _, b := range g.balls {
		if b.Attached {
			continue
		}
		clone := b
		clone.VX = -clone.VX
		if clone.VX == 0 {
			clone.VX = 0.15
		}
		g.balls = append(g.balls, clone)
		return
	}
}

// scaleBallSpeed multiplies every in-flight ball's speed, clamped to the
// configured range.
func (g *Game) scaleBallSpeed(factor float64) {
	for i := range g.balls {
		b := &g.balls[i]
		if b.Attached {
			continue
		}
		speed := core.ClampF(ballSpeed(b)*factor,
			g.cfg.Physics.MinBallSpeed, g.cfg.Physics.MaxBallSpeed)
		normalizeEnergy(b, speed)
	}
}
