package game

import "github.com/NegarMirgati/Ping/shared"

// EventSource yields pending input events. ok is false once the queue is
// drained for this frame.
type EventSource interface {
	PollEvent() (ev shared.Event, ok bool)
}

// FrameClock blocks until the next frame boundary.
type FrameClock interface {
	Tick()
}

// Surface is the drawing target for one frame.
type Surface interface {
	Size() (w, h int)
	Clear(c shared.Color)
	FillRect(r shared.Rect, c shared.Color)
	FillCircle(center shared.Point, radius int, c shared.Color)
	TextSize(text string) (w, h int)
	DrawText(text string, at shared.Point, fg, bg shared.Color)
	Present()
}

// Application bundles the platform collaborators a game runs against.
// It is built once at startup.
type Application struct {
	Input   EventSource
	Clock   FrameClock
	Surface Surface
}
