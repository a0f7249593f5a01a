package manager

import (
	"golang.org/x/exp/rand"

	"torus-snake/game/types"
)

// SamplesPerCell bounds rejection sampling at SamplesPerCell·n·n tries before
// falling back to a row-major scan.
const SamplesPerCell = 4

type FoodManager struct {
	rng  *rand.Rand
	food types.Point
	has  bool
}

func NewFoodManager(rng *rand.Rand) *FoodManager {
	return &FoodManager{rng: rng}
}

// Place marks one Food on a uniformly sampled cell that is not Snake. It
// returns false, placing nothing, when every cell is occupied by the snake.
func (fm *FoodManager) Place(grid types.Grid) (types.Point, bool) {
	fm.has = false

	tries := SamplesPerCell * grid.Size * grid.Size
	for i := 0; i < tries; i++ {
		food := types.Point{
			X: fm.rng.Intn(grid.Size),
			Y: fm.rng.Intn(grid.Size),
		}
		if grid.At(food) != types.Snake {
			return fm.put(grid, food), true
		}
	}

	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			p := types.Point{X: x, Y: y}
			if grid.At(p) == types.Empty {
				return fm.put(grid, p), true
			}
		}
	}
	return types.Point{}, false
}

func (fm *FoodManager) put(grid types.Grid, p types.Point) types.Point {
	grid.Set(p, types.Food)
	fm.food = p
	fm.has = true
	return p
}

// Food returns the current food cell, if any.
func (fm *FoodManager) Food() (types.Point, bool) {
	return fm.food, fm.has
}

// Eat clears the food record without touching the grid.
func (fm *FoodManager) Eat() {
	fm.has = false
}
