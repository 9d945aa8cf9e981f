package app

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"textlife/pkg/sims/life"
)

type countingSim struct {
	steps int
}

func (c *countingSim) String() string { return strings.Repeat("#", c.steps) + "\n" }
func (c *countingSim) Step()          { c.steps++ }

func TestRunConsoleOneGenerationPerByte(t *testing.T) {
	sim := &countingSim{}
	var out bytes.Buffer

	if err := RunConsole(strings.NewReader("ab\n"), &out, sim); err != nil {
		t.Fatalf("RunConsole: %v", err)
	}
	if sim.steps != 3 {
		t.Fatalf("steps = %d, want 3", sim.steps)
	}
	want := "\n\n#\n\n##\n\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunConsoleEmptyInput(t *testing.T) {
	sim := &countingSim{}
	var out bytes.Buffer
	if err := RunConsole(strings.NewReader(""), &out, sim); err != nil {
		t.Fatalf("RunConsole: %v", err)
	}
	if sim.steps != 0 || out.Len() != 0 {
		t.Fatalf("steps=%d output=%q, want no work on empty input", sim.steps, out.String())
	}
}

func TestRunConsoleReadError(t *testing.T) {
	boom := errors.New("boom")
	in := io.MultiReader(strings.NewReader("x"), iotest.ErrReader(boom))
	sim := &countingSim{}
	var out bytes.Buffer

	err := RunConsole(in, &out, sim)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if sim.steps != 1 {
		t.Fatalf("steps = %d, want 1 before the failure", sim.steps)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestRunConsoleWriteError(t *testing.T) {
	boom := errors.New("closed")
	sim := &countingSim{}
	err := RunConsole(strings.NewReader("x"), failingWriter{boom}, sim)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if sim.steps != 0 {
		t.Fatalf("steps = %d, want 0 when the render could not be written", sim.steps)
	}
}

func TestRunConsoleWithWorld(t *testing.T) {
	world := life.NewWithConfig(life.Config{Width: 2, Height: 2, Density: 0})
	world.Set(0, 0, true)
	world.Set(1, 1, true)
	var out bytes.Buffer

	if err := RunConsole(strings.NewReader("  "), &out, world); err != nil {
		t.Fatalf("RunConsole: %v", err)
	}
	want := "*.\n.*\n\n..\n..\n\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
	if world.Generation() != 2 {
		t.Fatalf("Generation = %d, want 2", world.Generation())
	}
}
