package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call after Restart should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, expected no step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step elapsed, expected no step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step elapsed, expected a step")
	}

	fs.Restart()
	if !fs.ShouldStep() {
		t.Fatal("Restart should arm an immediate step")
	}
}

func TestFixedStepDefaultRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != 100*time.Millisecond {
		t.Fatalf("step = %v, want 100ms", fs.step)
	}
}
