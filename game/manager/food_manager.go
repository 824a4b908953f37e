package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Spawn places a new food uniformly over the whole grid, edges included.
// Cells covered by the snake are not excluded.
func (fm *FoodManager) Spawn() entity.Food {
	pos := types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
	log.Debug().Stringer("position", pos).Msg("Generated food")
	return entity.NewFood(pos)
}
