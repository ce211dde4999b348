package game

import (
	"log/slog"

	"github.com/NegarMirgati/Ping/shared"
)

// Edge reports whether the ball left the field during a move.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return "none"
}

// collision identifies which branch of a ball move fired.
type collision int

const (
	collisionNone collision = iota
	collisionRightPaddle
	collisionLeftPaddle
	collisionWall
	collisionLeftExit
	collisionRightExit
)

func (c collision) edge() Edge {
	switch c {
	case collisionLeftExit:
		return EdgeLeft
	case collisionRightExit:
		return EdgeRight
	}
	return EdgeNone
}

// Ball is a circle moving with a fixed per-frame velocity.
type Ball struct {
	Center   shared.Point
	Velocity shared.Point
	Radius   int
	Color    shared.Color
	Width    int // field width
	Height   int // field height
}

// NewBall creates a ball on a field of the given size.
func NewBall(center, velocity shared.Point, radius, width, height int, color shared.Color) *Ball {
	return &Ball{
		Center:   center,
		Velocity: velocity,
		Radius:   radius,
		Color:    color,
		Width:    width,
		Height:   height,
	}
}

// Move advances the ball one frame. right and left are the paddles guarding
// the right and left edges. The returned edge is EdgeLeft or EdgeRight when
// the ball reached that edge of the field.
//
// Paddle hits test only the ball's current center against the paddle, and
// only while the ball travels towards that paddle.
func (b *Ball) Move(right, left *Paddle) Edge {
	c := b.step(right, left)
	switch c {
	case collisionRightPaddle, collisionLeftPaddle:
		Logger().Debug("ball hit paddle",
			slog.String("paddle", paddleName(c)),
			slog.Int("x", b.Center.X), slog.Int("y", b.Center.Y))
	case collisionLeftExit, collisionRightExit:
		Logger().Debug("ball reached edge",
			slog.String("edge", c.edge().String()),
			slog.Int("y", b.Center.Y))
	}
	return c.edge()
}

func (b *Ball) step(right, left *Paddle) collision {
	next := b.Center.Add(b.Velocity)

	if right.Contains(b.Center) && b.Velocity.X > 0 {
		b.Center = next
		b.bounceX()
		return collisionRightPaddle
	}
	if left.Contains(b.Center) && b.Velocity.X < 0 {
		b.Center = next
		b.bounceX()
		return collisionLeftPaddle
	}
	if next.Y < b.Radius || next.Y+b.Radius >= b.Height {
		b.Center.X = next.X
		b.Center.Y = shared.Clamp(next.Y, 0, b.Height)
		b.bounceY()
		return collisionWall
	}
	if next.X <= b.Radius {
		b.Center.Y = next.Y
		b.Center.X = shared.Clamp(next.X, 0, b.Width)
		b.bounceX()
		return collisionLeftExit
	}
	if next.X+b.Radius >= b.Width {
		b.Center.Y = next.Y
		b.Center.X = shared.Clamp(next.X, 0, b.Width)
		b.bounceX()
		return collisionRightExit
	}
	b.Center = next
	return collisionNone
}

func (b *Ball) bounceX() { b.Velocity.X = -b.Velocity.X }
func (b *Ball) bounceY() { b.Velocity.Y = -b.Velocity.Y }

func paddleName(c collision) string {
	if c == collisionLeftPaddle {
		return "left"
	}
	return "right"
}
