package engine

import (
	"log/slog"

	"github.com/NegarMirgati/Ping/shared"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// DrawRect draws a filled rectangle with the specified color.
func DrawRect(renderer *sdl.Renderer, x, y, w, h int32, r, g, b, a uint8) error {
	renderer.SetDrawColor(r, g, b, a)
	rect := sdl.Rect{X: x, Y: y, W: w, H: h}
	return renderer.FillRect(&rect)
}

func (e *Engine) Clear(c shared.Color) {
	e.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	e.Renderer.Clear()
}

func (e *Engine) FillRect(r shared.Rect, c shared.Color) {
	if err := DrawRect(e.Renderer, int32(r.X), int32(r.Y), int32(r.W), int32(r.H), c.R, c.G, c.B, c.A); err != nil {
		slog.Warn("fill rect failed", slog.Any("err", err))
	}
}

func (e *Engine) FillCircle(center shared.Point, radius int, c shared.Color) {
	x, y, rad := int32(center.X), int32(center.Y), int32(radius)
	if ok := gfx.FilledCircleRGBA(e.Renderer, x, y, rad, c.R, c.G, c.B, c.A); !ok {
		// If drawing the circle fails, fall back to its bounding square.
		if err := DrawRect(e.Renderer, x-rad, y-rad, 2*rad, 2*rad, c.R, c.G, c.B, c.A); err != nil {
			slog.Warn("fill circle failed", slog.Any("err", err))
		}
	}
}

// TextSize measures text in the score font. Without a font it is zero.
func (e *Engine) TextSize(text string) (int, int) {
	if e.Font == nil {
		return 0, 0
	}
	w, h, err := e.Font.SizeUTF8(text)
	if err != nil {
		slog.Warn("measure text failed", slog.String("text", text), slog.Any("err", err))
		return 0, 0
	}
	return w, h
}

func (e *Engine) DrawText(text string, at shared.Point, fg, bg shared.Color) {
	if e.Font == nil {
		return
	}
	if err := e.renderText(text, int32(at.X), int32(at.Y), fg, bg); err != nil {
		slog.Warn("draw text failed", slog.String("text", text), slog.Any("err", err))
	}
}

func (e *Engine) renderText(text string, x, y int32, fg, bg shared.Color) error {
	surface, err := e.Font.RenderUTF8Shaded(text, sdlColor(fg), sdlColor(bg))
	if err != nil {
		return err
	}
	defer surface.Free()
	texture, err := e.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()
	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	return e.Renderer.Copy(texture, nil, &rect)
}

func (e *Engine) Present() {
	e.Renderer.Present()
}

func sdlColor(c shared.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
