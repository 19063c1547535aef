package entity

import (
	"the-snake/game/types"
)

type Snake struct {
	Body      []types.Point // Head first
	Direction types.Direction
	Length    int // Target length the body is trimmed to
	Color     types.Color

	next    types.Direction // Pending heading, applied on the next step
	last    types.Point     // Cell freed by the most recent trim
	hasLast bool
	grid    types.Grid
}

func NewSnake(grid types.Grid, color types.Color) *Snake {
	s := &Snake{
		Color: color,
		grid:  grid,
	}
	s.Reset()
	return s
}

// Reset puts the snake back at the board center, length 1, heading right.
func (s *Snake) Reset() {
	s.Body = []types.Point{s.grid.Center()}
	s.Direction = types.RIGHT
	s.next = types.NONE
	s.Length = types.InitialLength
	s.hasLast = false
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// SetDirection queues dir as the pending heading. A turn back onto the
// current heading is rejected and reported as false.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.NONE || dir == s.Direction.Opposite() {
		return false
	}
	s.next = dir
	return true
}

// PendingDirection returns the queued heading, NONE when nothing is queued.
func (s *Snake) PendingDirection() types.Direction {
	return s.next
}

// UpdateDirection makes the pending heading active.
func (s *Snake) UpdateDirection() {
	if s.next != types.NONE {
		s.Direction = s.next
		s.next = types.NONE
	}
}

// NextHead computes where the head lands with the active heading. It does
// not change the snake.
func (s *Snake) NextHead() types.Point {
	return s.grid.Step(s.GetHead(), s.Direction)
}

// Move commits newHead at the front of the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops one cell from the tail when the body is longer than the
// target length and remembers it as the freed cell.
func (s *Snake) RemoveTail() {
	if len(s.Body) > s.Length {
		s.last = s.Body[len(s.Body)-1]
		s.hasLast = true
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow raises the target length by one. The body catches up on the next move.
func (s *Snake) Grow() {
	s.Length++
}

// Freed returns the cell released by the last trim, if any.
func (s *Snake) Freed() (types.Point, bool) {
	return s.last, s.hasLast
}

func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Size is the number of occupied cells.
func (s *Snake) Size() int {
	return len(s.Body)
}

func (s *Snake) Draw(surface types.Surface) {
	for _, p := range s.Body {
		surface.DrawCell(p, types.CellSize, s.Color, types.BorderColor)
	}

	// Erase the freed tail cell unless the body moved back onto it
	if last, ok := s.Freed(); ok && !s.Occupies(last) {
		surface.DrawCell(last, types.CellSize, types.BackgroundColor, types.BackgroundColor)
	}
}
