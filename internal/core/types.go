package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the console and window front ends drive.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Generation() int
	Cells() []uint8
}
