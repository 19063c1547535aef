package types

// Grid represents the board dimensions in cells
type Grid struct {
	Width  int
	Height int
}

// Board geometry. Positions are pixel coordinates, always a multiple of CellSize.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	CellSize     = 20
	GridWidth    = ScreenWidth / CellSize
	GridHeight   = ScreenHeight / CellSize
)

// Game constants
const (
	InitialSpeed  = 20  // Ticks per second at game start
	MaxSpeed      = 100 // Speed never grows past this
	InitialLength = 1

	// Random draws before apple placement falls back to scanning free cells
	MaxPlacementAttempts = 4 * GridWidth * GridHeight
)

// DefaultGrid is the fixed board every game is played on.
var DefaultGrid = Grid{Width: GridWidth, Height: GridHeight}

// PixelWidth returns the board extent on the x axis.
func (g Grid) PixelWidth() int { return g.Width * CellSize }

// PixelHeight returns the board extent on the y axis.
func (g Grid) PixelHeight() int { return g.Height * CellSize }

// Cells returns the number of addressable cells.
func (g Grid) Cells() int { return g.Width * g.Height }

// Center returns the cell closest to the middle of the board.
func (g Grid) Center() Point {
	return Point{X: g.PixelWidth() / 2, Y: g.PixelHeight() / 2}.Snap()
}

// Point is a pixel position on the board.
type Point struct {
	X, Y int
}

// Snap aligns the point to the cell grid.
func (p Point) Snap() Point {
	return Point{X: p.X - p.X%CellSize, Y: p.Y - p.Y%CellSize}
}

// Wrap folds the point back onto a toroidal board of the grid's extent.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.PixelWidth()), Y: mod(p.Y, g.PixelHeight())}
}

// Step moves p one cell along d and wraps the result onto the board.
func (g Grid) Step(p Point, d Direction) Point {
	v := d.ToPoint()
	return g.Wrap(Point{X: p.X + v.X*CellSize, Y: p.Y + v.Y*CellSize})
}

// CellPoint converts cell indices to a pixel position.
func CellPoint(col, row int) Point {
	return Point{X: col * CellSize, Y: row * CellSize}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
