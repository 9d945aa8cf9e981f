package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Stepper is what the console driver needs from a simulation.
type Stepper interface {
	fmt.Stringer
	Step()
}

// RunConsole prints the current generation followed by a blank line and then
// advances one generation, once for every byte read from in. It returns nil
// when in reaches end of stream.
func RunConsole(in io.Reader, out io.Writer, sim Stepper) error {
	r := bufio.NewReader(in)
	for {
		if _, err := r.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		if _, err := fmt.Fprintln(out, sim.String()); err != nil {
			return fmt.Errorf("write generation: %w", err)
		}
		sim.Step()
	}
}
