package app

import "testing"

func TestViewConfigNormalize(t *testing.T) {
	got := ViewConfig{Scale: -1, TPS: 0}.normalize()
	want := *NewViewConfig()
	if got != want {
		t.Fatalf("normalize = %+v, want %+v", got, want)
	}

	kept := ViewConfig{Scale: 3, TPS: 30}.normalize()
	if kept.Scale != 3 || kept.TPS != 30 {
		t.Fatalf("normalize changed valid values: %+v", kept)
	}
}
