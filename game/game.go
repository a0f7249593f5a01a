package game

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

var (
	ErrInvalidSize      = errors.New("grid size must be at least 1")
	ErrStartOutOfBounds = errors.New("start cell outside the grid")
	ErrNotReset         = errors.New("step called before reset")
	ErrGameOver         = errors.New("game is over")
)

// StartDirection is the committed direction of a freshly reset snake.
const StartDirection = types.Down

// Game owns the occupancy grid and the snake body. It is not safe for
// concurrent use; the simulation loop serializes access.
type Game struct {
	grid  types.Grid
	snake *entity.Snake
	steps int

	rng          *rand.Rand
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	over         bool
}

type Option func(*Game)

// WithRand sets the source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return g
}

// Reset reinitializes the grid to size×size with a one-cell snake at start
// and one food cell.
func (g *Game) Reset(size int, start types.Point) error {
	if size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if !start.In(size) {
		return fmt.Errorf("%w: %v on %dx%d", ErrStartOutOfBounds, start, size, size)
	}

	if g.grid.Size == size {
		g.grid.Clear()
	} else {
		g.grid = types.NewGrid(size)
	}
	g.snake = entity.NewSnake(start, StartDirection)
	g.grid.Set(start, types.Snake)
	g.steps = 0
	g.over = false

	g.foodMgr = manager.NewFoodManager(g.rng)
	g.collisionMgr = manager.NewCollisionManager(g.grid)
	g.foodMgr.Place(g.grid)
	return nil
}

// SetDirection records the direction for the next step. The last call before
// a step wins.
func (g *Game) SetDirection(d types.Direction) {
	if g.snake == nil {
		return
	}
	g.snake.SetDirection(d)
}

// Step advances the snake by one cell.
func (g *Game) Step() (types.Outcome, error) {
	if g.snake == nil {
		return types.Outcome{}, ErrNotReset
	}
	if g.over {
		return types.Outcome{}, ErrGameOver
	}
	g.steps++

	dir := g.snake.Commit()
	newHead := g.snake.GetHead().Wrap(dir.ToPoint(), g.grid.Size)

	tail, _ := g.snake.RemoveTail()
	g.grid.Set(tail, types.Empty)

	if g.collisionMgr.IsSelfCollision(newHead, g.snake) {
		g.over = true
		return types.Outcome{Kind: types.Collided, Size: g.snake.Len()}, nil
	}

	ate := g.collisionMgr.IsFoodCollision(newHead)
	g.snake.Move(newHead)
	g.grid.Set(newHead, types.Snake)

	if !ate {
		return types.Outcome{Kind: types.Moved, Size: g.snake.Len()}, nil
	}

	g.foodMgr.Eat()
	g.snake.Grow(tail)
	g.grid.Set(tail, types.Snake)
	g.foodMgr.Place(g.grid)
	return types.Outcome{Kind: types.AteFood, Size: g.snake.Len()}, nil
}

// Size returns the current body length, or 0 before Reset.
func (g *Game) Size() int {
	if g.snake == nil {
		return 0
	}
	return g.snake.Len()
}

// Body returns a copy of the body, head first.
func (g *Game) Body() []types.Point {
	if g.snake == nil {
		return nil
	}
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	return body
}

// Direction returns the committed direction.
func (g *Game) Direction() types.Direction {
	if g.snake == nil {
		return types.None
	}
	return g.snake.Direction
}

func (g *Game) Food() (types.Point, bool) {
	if g.foodMgr == nil {
		return types.Point{}, false
	}
	return g.foodMgr.Food()
}

// Steps returns how many steps ran since the last Reset.
func (g *Game) Steps() int {
	return g.steps
}

func (g *Game) Over() bool {
	return g.over
}
