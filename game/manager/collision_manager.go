package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// ignoredSegments is how many cells from the head are never checked: the
// head itself and the segment right behind it, which a single step cannot hit.
const ignoredSegments = 2

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports whether moving the head of snake onto pos would
// strike the body. The board wraps, so there are no walls to hit.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if len(snake.Body) <= ignoredSegments {
		return NoCollision
	}
	for _, part := range snake.Body[ignoredSegments:] {
		if pos == part {
			return SelfCollision
		}
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is on the board and free of the snake
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if pos != cm.grid.Wrap(pos) || pos != pos.Snap() {
		return false
	}
	return !snake.Occupies(pos)
}
