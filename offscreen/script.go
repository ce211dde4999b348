package offscreen

import (
	"log/slog"

	"github.com/NegarMirgati/Ping/game"
	"github.com/NegarMirgati/Ping/shared"
)

var (
	_ game.EventSource = (*Script)(nil)
	_ game.FrameClock  = (*Script)(nil)
)

// Script replays input events keyed by frame number and doubles as a frame
// clock that never sleeps. Frame 0 is the first tick.
type Script struct {
	events map[int][]shared.Event
	limit  int
	frame  int
	queue  []shared.Event
	loaded bool
}

// NewScript returns a script that requests a close at frame limit. A limit
// of zero never closes on its own.
func NewScript(limit int) *Script {
	return &Script{
		events: make(map[int][]shared.Event),
		limit:  limit,
	}
}

// At queues evs for delivery at frame.
func (s *Script) At(frame int, evs ...shared.Event) *Script {
	s.events[frame] = append(s.events[frame], evs...)
	return s
}

// Frame returns the current frame number.
func (s *Script) Frame() int { return s.frame }

func (s *Script) PollEvent() (shared.Event, bool) {
	if !s.loaded {
		s.loaded = true
		s.queue = append(s.queue[:0], s.events[s.frame]...)
		delete(s.events, s.frame)
		if s.limit > 0 && s.frame >= s.limit {
			slog.Debug("script frame limit reached", slog.Int("frame", s.frame))
			s.queue = append(s.queue, shared.Quit())
		}
	}
	if len(s.queue) == 0 {
		return shared.Event{}, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

// Tick moves to the next frame immediately.
func (s *Script) Tick() {
	s.frame++
	s.loaded = false
	s.queue = s.queue[:0]
}
