package app

// ViewConfig holds presentation settings for the window viewer.
type ViewConfig struct {
	Scale int
	TPS   int
}

// NewViewConfig returns a ViewConfig populated with sensible defaults.
func NewViewConfig() *ViewConfig {
	return &ViewConfig{Scale: 24, TPS: 10}
}

// normalize replaces non-positive values with the defaults.
func (c ViewConfig) normalize() ViewConfig {
	d := NewViewConfig()
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	return c
}
