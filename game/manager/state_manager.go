package manager

import (
	"fmt"

	"the-snake/game/types"
)

// State is the mode the game loop is in
type State int

const (
	Running State = iota
	Paused
	GameOver
	Won
)

func (s State) String() string {
	switch s {
	case Paused:
		return "Paused"
	case GameOver:
		return "Game over"
	case Won:
		return "You won"
	default:
		return "Snake"
	}
}

// StateManager tracks pause, end of game and the tick rate.
type StateManager struct {
	paused   bool
	gameOver bool
	won      bool
	speed    int
	maxSpeed int
}

func NewStateManager() *StateManager {
	return &StateManager{
		speed:    types.InitialSpeed,
		maxSpeed: types.MaxSpeed,
	}
}

// State resolves the flags into a single mode. An ended game reports as
// ended even while the pause flag is set.
func (sm *StateManager) State() State {
	switch {
	case sm.gameOver:
		return GameOver
	case sm.won:
		return Won
	case sm.paused:
		return Paused
	default:
		return Running
	}
}

// Running reports whether the simulation should advance this tick.
func (sm *StateManager) Running() bool {
	return sm.State() == Running
}

// TogglePause flips the pause flag. It is honored in every state.
func (sm *StateManager) TogglePause() bool {
	sm.paused = !sm.paused
	return sm.paused
}

func (sm *StateManager) IsPaused() bool {
	return sm.paused
}

func (sm *StateManager) SetGameOver() {
	sm.gameOver = true
}

func (sm *StateManager) IsGameOver() bool {
	return sm.gameOver
}

func (sm *StateManager) SetWon() {
	sm.won = true
}

// IncreaseSpeed adds one tick per second, saturating at the maximum.
func (sm *StateManager) IncreaseSpeed() {
	if sm.speed < sm.maxSpeed {
		sm.speed++
	}
}

func (sm *StateManager) GetSpeed() int {
	return sm.speed
}

// Reset returns to a running game at the initial speed.
func (sm *StateManager) Reset() {
	sm.paused = false
	sm.gameOver = false
	sm.won = false
	sm.speed = types.InitialSpeed
}

// Status formats the line shown in the window title.
func (sm *StateManager) Status(length int) string {
	return fmt.Sprintf("%s | speed: %d | length: %d", sm.State(), sm.speed, length)
}
