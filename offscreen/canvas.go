// Package offscreen runs the game without a window: it draws onto a gg
// software raster and replays scripted input at full speed.
package offscreen

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/NegarMirgati/Ping/game"
	"github.com/NegarMirgati/Ping/shared"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var _ game.Surface = (*Canvas)(nil)

// Canvas is a Surface backed by a gg context.
type Canvas struct {
	dc       *gg.Context
	source   *text.FontSource
	ascent   float64
	presents int
}

// NewCanvas creates a canvas of the given size. An empty fontPath selects
// the embedded Go Regular face.
func NewCanvas(width, height int, fontPath string, fontSize float64) (*Canvas, error) {
	var (
		source *text.FontSource
		err    error
	)
	if fontPath == "" {
		source, err = text.NewFontSource(goregular.TTF)
	} else {
		source, err = text.NewFontSourceFromFile(fontPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", fontPath, err)
	}

	face := source.Face(fontSize)
	dc := gg.NewContext(width, height)
	dc.SetFont(face)

	return &Canvas{
		dc:     dc,
		source: source,
		ascent: face.Metrics().Ascent,
	}, nil
}

func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *Canvas) Clear(col shared.Color) {
	c.dc.ClearWithColor(toRGBA(col))
}

func (c *Canvas) FillRect(r shared.Rect, col shared.Color) {
	c.setColor(col)
	c.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	c.fill("rect")
}

func (c *Canvas) FillCircle(center shared.Point, radius int, col shared.Color) {
	c.setColor(col)
	c.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	c.fill("circle")
}

// TextSize returns the text extent rounded up to whole pixels.
func (c *Canvas) TextSize(s string) (int, int) {
	w, h := c.dc.MeasureString(s)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// DrawText draws s with its top-left corner at at, over a bg box.
func (c *Canvas) DrawText(s string, at shared.Point, fg, bg shared.Color) {
	w, h := c.TextSize(s)
	c.FillRect(shared.Rect{X: at.X, Y: at.Y, W: w, H: h}, bg)
	c.setColor(fg)
	c.dc.DrawString(s, float64(at.X), float64(at.Y)+c.ascent)
}

// Present counts the frame. The raster always holds the latest frame.
func (c *Canvas) Present() {
	c.presents++
}

// Presents returns how many frames were presented.
func (c *Canvas) Presents() int { return c.presents }

// Image returns the current raster.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the current raster to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %q: %w", path, err)
	}
	return nil
}

func (c *Canvas) Close() error {
	if err := c.dc.Close(); err != nil {
		return err
	}
	return c.source.Close()
}

func (c *Canvas) setColor(col shared.Color) {
	rgba := toRGBA(col)
	c.dc.SetRGBA(rgba.R, rgba.G, rgba.B, rgba.A)
}

func (c *Canvas) fill(shape string) {
	if err := c.dc.Fill(); err != nil {
		slog.Warn("offscreen fill failed", slog.String("shape", shape), slog.Any("err", err))
	}
}

func toRGBA(col shared.Color) gg.RGBA {
	return gg.RGBA{
		R: float64(col.R) / 255,
		G: float64(col.G) / 255,
		B: float64(col.B) / 255,
		A: float64(col.A) / 255,
	}
}
