package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewEntropyRNG()
	for i := 0; i < 256; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) fired")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) did not fire")
		}
	}
}
