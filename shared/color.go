package shared

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Palette used by the game.
var (
	Black  = Color{R: 0, G: 0, B: 0, A: 255}
	White  = Color{R: 255, G: 255, B: 255, A: 255}
	Yellow = Color{R: 255, G: 255, B: 0, A: 255}
	Red    = Color{R: 255, G: 0, B: 0, A: 255}
)

// Background and Foreground are the field and label colors.
var (
	Background = Black
	Foreground = White
)
