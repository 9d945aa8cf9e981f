package core

import "fmt"

// Grid stores a bounded 2D grid of boolean cells. Cells are laid out column by
// column: every y for x=0 comes first, then every y for x=1, and so on.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-dead grid. Non-positive dimensions are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Len returns the number of cells in the grid.
func (g *Grid) Len() int { return len(g.data) }

// Contains reports whether (x, y) lies inside the grid. It never reads cell
// storage.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return x*g.H + y
}

// Alive returns the state of the cell at (x, y).
func (g *Grid) Alive(x, y int) bool { return g.data[g.Index(x, y)] }

// Set stores the state of the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) { g.data[g.Index(x, y)] = alive }

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Count returns the number of live cells.
func (g *Grid) Count() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}
