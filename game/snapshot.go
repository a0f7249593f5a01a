package game

import (
	"strings"

	"torus-snake/game/types"
)

// Snapshot is a read-only copy of the game for render sinks.
type Snapshot struct {
	Session   string
	Size      int
	Cells     []types.Cell // row-major, Size*Size
	Body      []types.Point
	Direction types.Direction
}

func (g *Game) Snapshot() Snapshot {
	if g.snake == nil {
		return Snapshot{}
	}
	grid := g.grid.Clone()
	return Snapshot{
		Size:      grid.Size,
		Cells:     grid.Cells,
		Body:      g.Body(),
		Direction: g.snake.Direction,
	}
}

func (s Snapshot) At(p types.Point) types.Cell {
	return s.Cells[p.Y*s.Size+p.X]
}

// Food returns the food cell, if one is on the grid.
func (s Snapshot) Food() (types.Point, bool) {
	for i, c := range s.Cells {
		if c == types.Food {
			return types.Point{X: i % s.Size, Y: i / s.Size}, true
		}
	}
	return types.Point{}, false
}

// Head returns the first body segment.
func (s Snapshot) Head() types.Point {
	if len(s.Body) == 0 {
		return types.Point{}
	}
	return s.Body[0]
}

// String renders the grid one row per line using '.', 'S' and 'F'.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow(s.Size * (s.Size + 1))
	for y := 0; y < s.Size; y++ {
		b.WriteString(s.Row(y))
		b.WriteByte('\n')
	}
	return b.String()
}

// Row renders one grid row using '.', 'S' and 'F'.
func (s Snapshot) Row(y int) string {
	row := make([]byte, s.Size)
	for x := 0; x < s.Size; x++ {
		switch s.Cells[y*s.Size+x] {
		case types.Snake:
			row[x] = 'S'
		case types.Food:
			row[x] = 'F'
		default:
			row[x] = '.'
		}
	}
	return string(row)
}
