package breakout

import (
	"math"

	"github.com/termcade/termcade/internal/core"
)

// normalizeEnergy rescales the ball's velocity to the given speed while
// keeping its direction.
func normalizeEnergy(b *Ball, speed float64) {
	mag := math.Hypot(b.VX, b.VY)
	if mag == 0 {
		b.VY = -speed
		return
	}
	b.VX = b.VX / mag * speed
	b.VY = b.VY / mag * speed
}

// ballSpeed returns the current velocity magnitude of the ball.
func ballSpeed(b *Ball) float64 {
	return math.Hypot(b.VX, b.VY)
}

// updateBalls advances every ball, resolving wall, paddle, and brick
// collisions. Balls that fall past the bottom edge are removed.
func (g *Game) updateBalls() {
	alive := g.balls[:0]
	for i := range g.balls {
		b := &g.balls[i]
		if b.Attached {
			// Attached ball rides the paddle
			b.X = g.paddleX + float64(g.paddleWidth)/2.0
			b.Y = float64(g.paddleY) - 1
			alive = append(alive, *b)
			continue
		}

		b.X += b.VX
		b.Y += b.VY

		// Side and top walls reflect
		if b.X <= 1 {
			b.X = 1
			b.VX = -b.VX
		}
		if b.X >= float64(g.runtime.ScreenW-2) {
			b.X = float64(g.runtime.ScreenW - 2)
			b.VX = -b.VX
		}
		if b.Y <= 1 {
			b.Y = 1
			b.VY = -b.VY
		}

		// Bottom edge removes the ball
		if b.Y >= float64(g.runtime.ScreenH-1) {
			continue
		}

		g.collidePaddle(b)
		g.collideBricks(b)

		alive = append(alive, *b)
	}
	g.balls = alive
}

// collidePaddle bounces the ball off the paddle. The hit position along
// the paddle sets the outgoing angle; speed magnitude is preserved.
func (g *Game) collidePaddle(b *Ball) {
	if b.VY <= 0 {
		return
	}
	if b.Y < float64(g.paddleY)-ballRadius || b.Y > float64(g.paddleY)+ballRadius {
		return
	}
	if b.X < g.paddleX-ballRadius || b.X > g.paddleX+float64(g.paddleWidth)+ballRadius {
		return
	}

	hitPos := (b.X - g.paddleX) / float64(g.paddleWidth)
	hitPos = core.ClampF(hitPos, 0, 1)
	angle := (hitPos - 0.5) * 0.7 * math.Pi

	speed := ballSpeed(b)
	b.VX = speed * math.Sin(angle)
	b.VY = -speed * math.Cos(angle)
	b.Y = float64(g.paddleY) - 1

	g.Play(core.SoundHit)
}

// collideBricks destroys at most one brick per tick per ball, reflecting
// the axis with the greater penetration.
func (g *Game) collideBricks(b *Ball) {
	for i := range g.bricks {
		br := &g.bricks[i]

		// Closest point on the brick rectangle to the ball center
		cx := core.ClampF(b.X, float64(br.X), float64(br.X+br.W))
		cy := core.ClampF(b.Y, float64(br.Y), float64(br.Y+br.H))

		dx := b.X - cx
		dy := b.Y - cy
		if dx*dx+dy*dy > ballRadius*ballRadius {
			continue
		}

		// Penetration depth per axis decides which one reflects
		penX := ballRadius - math.Abs(dx)
		penY := ballRadius - math.Abs(dy)
		if penX > penY {
			b.VY = -b.VY
		} else {
			b.VX = -b.VX
		}

		g.destroyBrick(i)
		return
	}
}

// destroyBrick removes the brick at index i, scores it, and maybe drops
// a powerup.
func (g *Game) destroyBrick(i int) {
	br := g.bricks[i]
	g.AddScore(br.Points)
	g.Play(core.SoundExplosion)

	g.bricks = append(g.bricks[:i], g.bricks[i+1:]...)

	if g.rng.Intn(100) < g.cfg.Gameplay.PowerUpChance {
		g.spawnPowerUp(float64(br.X)+float64(br.W)/2.0, float64(br.Y))
	}
}
