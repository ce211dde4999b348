package engine

import (
	"github.com/NegarMirgati/Ping/game"

	"github.com/veandco/go-sdl2/sdl"
)

var _ game.FrameClock = (*Clock)(nil)

// Clock caps the loop at a fixed frame rate using SDL's millisecond timer.
type Clock struct {
	frameMs uint64
	last    uint64
}

func NewClock(fps int) *Clock {
	return &Clock{
		frameMs: uint64(1000 / fps),
		last:    sdl.GetTicks64(),
	}
}

// Tick sleeps for whatever is left of the current frame.
func (c *Clock) Tick() {
	elapsed := sdl.GetTicks64() - c.last
	if elapsed < c.frameMs {
		sdl.Delay(uint32(c.frameMs - elapsed))
	}
	c.last = sdl.GetTicks64()
}
