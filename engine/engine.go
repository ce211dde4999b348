package engine

import (
	"fmt"

	"github.com/NegarMirgati/Ping/game"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	_ game.Surface     = (*Engine)(nil)
	_ game.EventSource = (*Engine)(nil)
)

// Engine owns the SDL window, renderer and score font. It is both the
// drawing surface and the input source of the game.
type Engine struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Font     *ttf.Font

	width, height int32
}

func NewEngine(title string, width, height int32) (*Engine, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "linear")

	window, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		width, height, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	if err := renderer.SetLogicalSize(width, height); err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("set logical size: %w", err)
	}

	if err := ttf.Init(); err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("init ttf: %w", err)
	}

	return &Engine{
		Window:   window,
		Renderer: renderer,
		width:    width,
		height:   height,
	}, nil
}

func (e *Engine) Shutdown() {
	if e.Font != nil {
		e.Font.Close()
	}
	ttf.Quit()
	e.Renderer.Destroy()
	e.Window.Destroy()
	sdl.Quit()
}

// Size returns the logical size of the drawing area.
func (e *Engine) Size() (int, int) {
	return int(e.width), int(e.height)
}
