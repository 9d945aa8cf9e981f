package life

// UpdateMode selects how a generation pass reads neighbour state.
type UpdateMode int

const (
	// Sequential writes each cell back as soon as it is evaluated, so cells
	// visited later in the same pass see a mix of old and new neighbours.
	Sequential UpdateMode = iota
	// Synchronous evaluates every cell against the previous generation and
	// swaps in the result once the pass completes.
	Synchronous
)

// String returns the mode name.
func (m UpdateMode) String() string {
	switch m {
	case Synchronous:
		return "synchronous"
	default:
		return "sequential"
	}
}

// DefaultDensity is the probability that a cell starts alive.
const DefaultDensity = 0.2

// Config controls the World dimensions, seeding density and update mode.
type Config struct {
	Width   int
	Height  int
	Density float64
	Update  UpdateMode
}

// DefaultConfig returns the standard 10x20 sequential configuration.
func DefaultConfig() Config {
	return Config{
		Width:   10,
		Height:  20,
		Density: DefaultDensity,
		Update:  Sequential,
	}
}

// normalize clamps out-of-range values.
func (c Config) normalize() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Density > 1 {
		c.Density = 1
	}
	if c.Update != Synchronous {
		c.Update = Sequential
	}
	return c
}
