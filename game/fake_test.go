package game

import (
	"fmt"

	"github.com/NegarMirgati/Ping/shared"
)

// fakeInput hands out one queued batch of events per frame.
type fakeInput struct {
	batches [][]shared.Event
	cur     []shared.Event
	loaded  bool
}

func (f *fakeInput) push(evs ...shared.Event) {
	f.batches = append(f.batches, evs)
}

func (f *fakeInput) PollEvent() (shared.Event, bool) {
	if !f.loaded {
		f.loaded = true
		if len(f.batches) > 0 {
			f.cur, f.batches = f.batches[0], f.batches[1:]
		}
	}
	if len(f.cur) == 0 {
		f.loaded = false
		return shared.Event{}, false
	}
	ev := f.cur[0]
	f.cur = f.cur[1:]
	return ev, true
}

// fakeClock counts ticks and can run a hook on each one.
type fakeClock struct {
	ticks  int
	onTick func(n int)
}

func (c *fakeClock) Tick() {
	c.ticks++
	if c.onTick != nil {
		c.onTick(c.ticks)
	}
}

// fakeSurface records draw calls as strings.
type fakeSurface struct {
	w, h     int
	calls    []string
	presents int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{w: shared.FieldWidth, h: shared.FieldHeight}
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) Clear(c shared.Color) {
	s.calls = append(s.calls, fmt.Sprintf("clear %v", c))
}

func (s *fakeSurface) FillRect(r shared.Rect, c shared.Color) {
	s.calls = append(s.calls, fmt.Sprintf("rect %v %v", r, c))
}

func (s *fakeSurface) FillCircle(center shared.Point, radius int, c shared.Color) {
	s.calls = append(s.calls, fmt.Sprintf("circle %v %d %v", center, radius, c))
}

func (s *fakeSurface) TextSize(text string) (int, int) { return 10 * len(text), 20 }

func (s *fakeSurface) DrawText(text string, at shared.Point, fg, bg shared.Color) {
	s.calls = append(s.calls, fmt.Sprintf("text %q %v", text, at))
}

func (s *fakeSurface) Present() {
	s.presents++
	s.calls = append(s.calls, "present")
}

func newTestGame() (*Game, *fakeInput, *fakeClock, *fakeSurface) {
	in := &fakeInput{}
	clk := &fakeClock{}
	surf := newFakeSurface()
	g := NewGame(&Application{Input: in, Clock: clk, Surface: surf})
	return g, in, clk, surf
}
