// Package autopilot steers the snake without a human at the keyboard. It is
// both a render sink (it reads each snapshot) and an input source (it answers
// with a direction).
package autopilot

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"torus-snake/game"
	"torus-snake/game/types"
)

type Pilot struct {
	mu      sync.Mutex
	onInput func(types.Direction)
	rng     *rand.Rand
}

func New(seed uint64) *Pilot {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Pilot{rng: rand.New(rand.NewSource(seed))}
}

func (p *Pilot) Bind(onInput func(types.Direction)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onInput = onInput
}

func (p *Pilot) OnReset(size int, snap game.Snapshot) {
	p.steer(snap)
}

func (p *Pilot) OnUpdate(snap game.Snapshot, size int) {
	p.steer(snap)
}

func (p *Pilot) OnGameOver() {}

func (p *Pilot) steer(snap game.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.onInput == nil || len(snap.Body) == 0 {
		return
	}
	p.onInput(p.choose(snap))
}

// choose picks among straight, left and right the safe move that brings the
// head closest to the food. Ties are broken at random.
func (p *Pilot) choose(snap game.Snapshot) types.Direction {
	current := snap.Direction
	if !current.Valid() {
		current = game.StartDirection
	}
	candidates := []types.Direction{current, current.TurnLeft(), current.TurnRight()}
	if len(snap.Body) == 1 {
		candidates = append(candidates, current.Opposite())
	}

	head := snap.Head()
	food, hasFood := snap.Food()

	best := make([]types.Direction, 0, len(candidates))
	bestDist := -1
	for _, d := range candidates {
		next := head.Wrap(d.ToPoint(), snap.Size)
		if !isSafe(snap, next) {
			continue
		}
		dist := 0
		if hasFood {
			dist = manhattanDistance(next, food, snap.Size)
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			bestDist = dist
			best = append(best[:0], d)
		case dist == bestDist:
			best = append(best, d)
		}
	}
	if len(best) == 0 {
		return current
	}
	return best[p.rng.Intn(len(best))]
}

// isSafe reports whether moving the head onto next survives the step. The
// tail cell vacates unless the head lands on food.
func isSafe(snap game.Snapshot, next types.Point) bool {
	if snap.At(next) != types.Snake {
		return true
	}
	return next == snap.Body[len(snap.Body)-1]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// manhattanDistance is the Manhattan distance on a size×size torus.
func manhattanDistance(p1, p2 types.Point, size int) int {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	if dx > size/2 {
		dx = size - dx
	}
	if dy > size/2 {
		dy = size - dy
	}
	return dx + dy
}
