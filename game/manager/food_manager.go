package manager

import (
	"errors"

	"the-snake/game/entity"
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when the snake covers every cell.
var ErrBoardFull = errors.New("no free cell left for food")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	maxAttempts  int
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		maxAttempts:  types.MaxPlacementAttempts,
	}
}

// GenerateFood picks a uniformly random cell not covered by the snake.
// Random draws are bounded; once they run out the free cells are listed
// and one of them is chosen, so a nearly full board never spins.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	if snake.Size() >= fm.grid.Cells() {
		return types.Point{}, ErrBoardFull
	}

	for i := 0; i < fm.maxAttempts; i++ {
		food := types.CellPoint(fm.rng.Intn(fm.grid.Width), fm.rng.Intn(fm.grid.Height))
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, nil
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	taken := make(map[types.Point]struct{}, snake.Size())
	for _, p := range snake.Body {
		taken[p] = struct{}{}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-len(taken))
	for row := 0; row < fm.grid.Height; row++ {
		for col := 0; col < fm.grid.Width; col++ {
			p := types.CellPoint(col, row)
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
