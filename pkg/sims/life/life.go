package life

import (
	"strings"

	"textlife/internal/core"
)

// neighbourOffsets lists the eight compass directions in lookup order.
var neighbourOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// World implements Conway's Game of Life on a bounded, non-wrapping grid.
type World struct {
	cfg        Config
	grid       *core.Grid
	next       *core.Grid
	display    []uint8
	generation int
}

// New returns a randomly seeded World with the provided dimensions.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World randomly seeded from process entropy.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalize()
	w := &World{
		cfg:     cfg,
		grid:    core.NewGrid(cfg.Width, cfg.Height),
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	if cfg.Update == Synchronous {
		w.next = core.NewGrid(cfg.Width, cfg.Height)
	}
	w.Randomize(core.NewEntropyRNG())
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Config returns the normalized configuration the World was built with.
func (w *World) Config() Config { return w.cfg }

// Generation returns the number of completed generation passes.
func (w *World) Generation() int { return w.generation }

// Population returns the number of live cells.
func (w *World) Population() int { return w.grid.Count() }

// Alive reports the state of the cell at (x, y). It panics outside the grid.
func (w *World) Alive(x, y int) bool { return w.grid.Alive(x, y) }

// Set overwrites the state of the cell at (x, y). It panics outside the grid.
func (w *World) Set(x, y int, alive bool) { w.grid.Set(x, y, alive) }

// Clear kills every cell.
func (w *World) Clear() { w.grid.Clear() }

// Randomize sets each cell alive with the configured density.
func (w *World) Randomize(rng *core.RNG) {
	for x := 0; x < w.grid.W; x++ {
		for y := 0; y < w.grid.H; y++ {
			w.grid.Set(x, y, rng.Chance(w.cfg.Density))
		}
	}
}

// Reset reseeds the board from fresh entropy and restarts the generation count.
func (w *World) Reset() {
	w.Randomize(core.NewEntropyRNG())
	w.generation = 0
}

// Neighbours counts live cells among the in-bounds neighbours of (x, y).
func (w *World) Neighbours(x, y int) int {
	return neighbours(w.grid, x, y)
}

func neighbours(g *core.Grid, x, y int) int {
	n := 0
	for _, off := range neighbourOffsets {
		nx, ny := x+off[0], y+off[1]
		if !g.Contains(nx, ny) {
			continue
		}
		if g.Alive(nx, ny) {
			n++
		}
	}
	return n
}

// nextState applies B3/S23 to a cell with n live neighbours.
func nextState(alive bool, n int) bool {
	switch {
	case n < 2 || n > 3:
		return false
	case n == 3:
		return true
	default:
		return alive
	}
}

// EvolveCell applies the rule to (x, y) and writes the result back at once.
func (w *World) EvolveCell(x, y int) {
	w.grid.Set(x, y, nextState(w.grid.Alive(x, y), w.Neighbours(x, y)))
}

// Evolve advances the board by one generation, visiting x in the outer loop
// and y in the inner loop.
func (w *World) Evolve() {
	if w.cfg.Update == Synchronous {
		w.evolveSynchronous()
	} else {
		for x := 0; x < w.grid.W; x++ {
			for y := 0; y < w.grid.H; y++ {
				w.EvolveCell(x, y)
			}
		}
	}
	w.generation++
}

func (w *World) evolveSynchronous() {
	for x := 0; x < w.grid.W; x++ {
		for y := 0; y < w.grid.H; y++ {
			w.next.Set(x, y, nextState(w.grid.Alive(x, y), neighbours(w.grid, x, y)))
		}
	}
	w.grid, w.next = w.next, w.grid
}

// Step advances the simulation by one generation.
func (w *World) Step() { w.Evolve() }

// Cells returns the board as 0/1 values in the same order String prints them.
// The slice is reused between calls.
func (w *World) Cells() []uint8 {
	for x := 0; x < w.grid.W; x++ {
		for y := 0; y < w.grid.H; y++ {
			var v uint8
			if w.grid.Alive(x, y) {
				v = 1
			}
			w.display[w.grid.Index(x, y)] = v
		}
	}
	return w.display
}

// String renders one line per x, one character per y: '*' alive, '.' dead.
func (w *World) String() string {
	var b strings.Builder
	b.Grow(w.grid.W * (w.grid.H + 1))
	for x := 0; x < w.grid.W; x++ {
		for y := 0; y < w.grid.H; y++ {
			if w.grid.Alive(x, y) {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
