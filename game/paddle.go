package game

import "github.com/NegarMirgati/Ping/shared"

// Paddle is a vertically moving rectangle. Positive velocity moves it up.
type Paddle struct {
	Rect        shared.Rect
	Velocity    int
	Color       shared.Color
	FieldHeight int
}

// NewPaddle creates a stationary paddle with its top-left corner at (left, top).
func NewPaddle(left, top, width, height, fieldHeight int, color shared.Color) *Paddle {
	return &Paddle{
		Rect:        shared.Rect{X: left, Y: top, W: width, H: height},
		Color:       color,
		FieldHeight: fieldHeight,
	}
}

// Start sets the paddle velocity.
func (p *Paddle) Start(velocity int) {
	p.Velocity = velocity
}

// Stop halts the paddle until the next Start.
func (p *Paddle) Stop() {
	p.Velocity = 0
}

// Move applies one frame of velocity. Overshoot is clamped to the wall
// rather than bounced.
func (p *Paddle) Move() {
	switch {
	case p.Velocity > 0:
		p.Rect.Y = max(p.Rect.Y-p.Velocity, 0)
	case p.Velocity < 0:
		p.Rect.Y = min(p.Rect.Y-p.Velocity, p.FieldHeight-p.Rect.H)
	}
}

// Contains reports whether pt is inside the paddle, edges included.
func (p *Paddle) Contains(pt shared.Point) bool {
	return p.Rect.Contains(pt)
}

func (p *Paddle) MovingUp() bool   { return p.Velocity > 0 }
func (p *Paddle) MovingDown() bool { return p.Velocity < 0 }
