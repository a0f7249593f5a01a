package types

import "fmt"

// Point is a grid coordinate. 0 <= X, Y < grid size.
type Point struct {
	X, Y int
}

// Wrap moves p by delta on a size×size torus.
func (p Point) Wrap(delta Point, size int) Point {
	return Point{
		X: ((p.X+delta.X)%size + size) % size,
		Y: ((p.Y+delta.Y)%size + size) % size,
	}
}

// In reports whether p lies on a size×size grid.
func (p Point) In(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is the semantic state of one grid coordinate.
type Cell uint8

const (
	Empty Cell = iota
	Snake
	Food
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Snake:
		return "snake"
	case Food:
		return "food"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// OutcomeKind tags the result of one step.
type OutcomeKind int

const (
	Moved OutcomeKind = iota
	AteFood
	Collided
)

func (k OutcomeKind) String() string {
	switch k {
	case Moved:
		return "moved"
	case AteFood:
		return "ate-food"
	case Collided:
		return "collided"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the result of one step. Size is the body length after the step.
type Outcome struct {
	Kind OutcomeKind
	Size int
}
