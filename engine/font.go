package engine

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/goregular"
)

// OpenFont loads the score font. An empty path selects the embedded Go
// Regular face.
func (e *Engine) OpenFont(path string, size int) error {
	var (
		font *ttf.Font
		err  error
	)
	if path == "" {
		rw, rwErr := sdl.RWFromMem(goregular.TTF)
		if rwErr != nil {
			return fmt.Errorf("wrap embedded font: %w", rwErr)
		}
		font, err = ttf.OpenFontRW(rw, 1, size)
	} else {
		font, err = ttf.OpenFont(path, size)
	}
	if err != nil {
		return fmt.Errorf("open font %q: %w", path, err)
	}
	if e.Font != nil {
		e.Font.Close()
	}
	e.Font = font
	return nil
}
