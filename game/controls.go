package game

import "github.com/NegarMirgati/Ping/shared"

// binding ties a key to one paddle and one direction (+1 up, -1 down).
type binding struct {
	side shared.Side
	dir  int
}

var bindings = map[shared.Key]binding{
	shared.KeyUp:   {side: shared.SideRight, dir: +1},
	shared.KeyDown: {side: shared.SideRight, dir: -1},
	shared.KeyQ:    {side: shared.SideLeft, dir: +1},
	shared.KeyA:    {side: shared.SideLeft, dir: -1},
}

func (g *Game) paddle(side shared.Side) *Paddle {
	if side == shared.SideLeft {
		return g.Left
	}
	return g.Right
}

func (g *Game) handleKeyDown(k shared.Key) {
	b, ok := bindings[k]
	if !ok {
		return
	}
	g.paddle(b.side).Start(b.dir * PaddleSpeed)
}

// handleKeyUp stops a paddle only if it is still moving in the released
// key's direction, so releasing one key does not cancel the other.
func (g *Game) handleKeyUp(k shared.Key) {
	b, ok := bindings[k]
	if !ok {
		return
	}
	p := g.paddle(b.side)
	if (b.dir > 0 && p.MovingUp()) || (b.dir < 0 && p.MovingDown()) {
		p.Stop()
	}
}
