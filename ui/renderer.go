package ui

import (
	"errors"

	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer is the raylib window backend. It draws the board, shows the
// status in the window title and reports key presses.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	title        string
	drawing      bool
}

// NewRenderer opens a window sized to the board.
func NewRenderer(grid types.Grid, title string) (*Renderer, error) {
	r := &Renderer{
		screenWidth:  int32(grid.PixelWidth()),
		screenHeight: int32(grid.PixelHeight()),
		title:        title,
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(r.screenWidth, r.screenHeight, title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window could not be created")
	}
	// Quit keys are mapped explicitly, Esc must not close the window behind our back
	rl.SetExitKey(0)
	return r, nil
}

func (r *Renderer) Close() {
	if r.drawing {
		rl.EndDrawing()
		r.drawing = false
	}
	rl.CloseWindow()
}

func (r *Renderer) begin() {
	if !r.drawing {
		rl.BeginDrawing()
		r.drawing = true
	}
}

func (r *Renderer) Fill(c types.Color) {
	r.begin()
	rl.ClearBackground(toColor(c))
}

func (r *Renderer) DrawCell(p types.Point, size int, fill, border types.Color) {
	r.begin()
	x, y, s := int32(p.X), int32(p.Y), int32(size)
	rl.DrawRectangle(x, y, s, s, toColor(fill))
	rl.DrawRectangleLines(x, y, s, s, toColor(border))
}

func (r *Renderer) SetTitle(title string) {
	if title == r.title {
		return
	}
	rl.SetWindowTitle(title)
	r.title = title
}

// Present ends the frame. raylib polls input while finishing the frame.
func (r *Renderer) Present() {
	r.begin()
	rl.EndDrawing()
	r.drawing = false
}

// Poll drains the key presses raylib queued since the last frame.
func (r *Renderer) Poll() []types.Event {
	var events []types.Event
	if rl.WindowShouldClose() {
		events = append(events, types.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := mapKey(key); ok {
			events = append(events, ev)
		}
	}
	return events
}

func mapKey(key int32) (types.Event, bool) {
	switch key {
	case rl.KeyUp:
		return types.KeyEvent(types.KeyUp), true
	case rl.KeyDown:
		return types.KeyEvent(types.KeyDown), true
	case rl.KeyLeft:
		return types.KeyEvent(types.KeyLeft), true
	case rl.KeyRight:
		return types.KeyEvent(types.KeyRight), true
	case rl.KeySpace:
		return types.KeyEvent(types.KeySpace), true
	case rl.KeyR:
		return types.KeyEvent(types.KeyRestart), true
	case rl.KeyQ, rl.KeyEscape:
		return types.QuitEvent(), true
	default:
		return types.Event{}, false
	}
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
