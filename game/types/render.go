package types

// Color is an opaque RGB color, converted by each backend.
type Color struct {
	R, G, B uint8
}

var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	AppleColor      = Color{R: 255, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
)

// Surface is the drawing target the game renders into once per tick.
type Surface interface {
	Fill(c Color)
	DrawCell(p Point, size int, fill, border Color)
	SetTitle(title string)
	Present()
}

// Drawable is implemented by every entity that knows how to paint itself.
type Drawable interface {
	Draw(s Surface)
}
