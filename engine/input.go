package engine

import (
	"github.com/NegarMirgati/Ping/shared"

	"github.com/veandco/go-sdl2/sdl"
)

// PollEvent returns the next event the game understands. Other SDL events
// and key repeats are dropped.
func (e *Engine) PollEvent() (shared.Event, bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return shared.Quit(), true
		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			key := translateKey(ev.Keysym.Sym)
			if ev.Type == sdl.KEYDOWN {
				return shared.Press(key), true
			}
			return shared.Release(key), true
		}
	}
	return shared.Event{}, false
}

func translateKey(sym sdl.Keycode) shared.Key {
	switch sym {
	case sdl.K_UP:
		return shared.KeyUp
	case sdl.K_DOWN:
		return shared.KeyDown
	case sdl.K_q:
		return shared.KeyQ
	case sdl.K_a:
		return shared.KeyA
	}
	return shared.KeyUnknown
}
