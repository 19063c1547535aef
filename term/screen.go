// Package term is the terminal backend: the board is drawn with tcell, two
// columns per cell, under a one line status bar.
package term

import (
	"fmt"

	"the-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellColumns = 2 // terminal cells are roughly twice as tall as wide
	boardTop    = 1 // row 0 holds the status line
	eventBuffer = 256
)

// Screen implements types.Surface and the game's input source on a terminal.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	stopCh chan struct{}
	doneCh chan struct{}
	title  string
}

// New opens the controlling terminal.
func New() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen initializes screen and starts reading its input.
func NewWithScreen(screen tcell.Screen) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	s := &Screen{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	go s.pollLoop()
	return s, nil
}

// pollLoop forwards terminal events until the screen is finalized
func (s *Screen) pollLoop() {
	defer close(s.doneCh)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Close restores the terminal and waits for the reader to exit.
func (s *Screen) Close() {
	select {
	case <-s.stopCh:
		return
	default:
	}
	close(s.stopCh)
	s.screen.Fini()
	<-s.doneCh
}

// Poll drains queued events without blocking.
func (s *Screen) Poll() []types.Event {
	var out []types.Event
	for {
		select {
		case ev := <-s.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				s.screen.Sync()
				continue
			}
			if e, ok := translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (s *Screen) Fill(c types.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

func (s *Screen) DrawCell(p types.Point, size int, fill, border types.Color) {
	col := p.X / size * cellColumns
	row := p.Y/size + boardTop
	style := tcell.StyleDefault.Background(toColor(fill)).Foreground(toColor(border))

	left, right := '[', ']'
	if fill == border {
		left, right = ' ', ' '
	}
	s.screen.SetContent(col, row, left, nil, style)
	s.screen.SetContent(col+1, row, right, nil, style)
}

// SetTitle writes the status line above the board.
func (s *Screen) SetTitle(title string) {
	s.title = title
	width, _ := s.screen.Size()
	runes := []rune(title)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		s.screen.SetContent(x, 0, r, nil, tcell.StyleDefault)
	}
}

func (s *Screen) Title() string {
	return s.title
}

func (s *Screen) Present() {
	s.screen.Show()
}

func translate(ev tcell.Event) (types.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return types.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return types.KeyEvent(types.KeyUp), true
	case tcell.KeyDown:
		return types.KeyEvent(types.KeyDown), true
	case tcell.KeyLeft:
		return types.KeyEvent(types.KeyLeft), true
	case tcell.KeyRight:
		return types.KeyEvent(types.KeyRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.QuitEvent(), true
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			return types.KeyEvent(types.KeySpace), true
		case 'r', 'R':
			return types.KeyEvent(types.KeyRestart), true
		case 'q', 'Q':
			return types.QuitEvent(), true
		}
	}
	return types.Event{}, false
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
