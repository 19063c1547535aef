package types

// EventType distinguishes the input events the game reacts to
type EventType int

const (
	EventKey EventType = iota
	EventQuit
)

// Key is a backend independent key code
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyRestart
)

// Event is a single input event drained from a backend.
type Event struct {
	Type EventType
	Key  Key
}

// KeyEvent builds a key press event.
func KeyEvent(k Key) Event { return Event{Type: EventKey, Key: k} }

// QuitEvent builds a quit request.
func QuitEvent() Event { return Event{Type: EventQuit} }

// Direction returns the heading bound to an arrow key.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return UP, true
	case KeyDown:
		return DOWN, true
	case KeyLeft:
		return LEFT, true
	case KeyRight:
		return RIGHT, true
	default:
		return NONE, false
	}
}
