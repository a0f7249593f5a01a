package types

// Grid is a Size×Size occupancy map stored row-major.
type Grid struct {
	Size  int
	Cells []Cell
}

func NewGrid(size int) Grid {
	return Grid{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
}

func (g Grid) At(p Point) Cell {
	return g.Cells[p.Y*g.Size+p.X]
}

func (g Grid) Set(p Point, c Cell) {
	g.Cells[p.Y*g.Size+p.X] = c
}

// Clear marks every cell Empty.
func (g Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = Empty
	}
}

func (g Grid) Clone() Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{Size: g.Size, Cells: cells}
}

// Count returns how many cells hold c.
func (g Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.Cells {
		if cell == c {
			n++
		}
	}
	return n
}
