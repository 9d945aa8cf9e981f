package ui

import "fmt"

// StatusLabel formats the overlay text for a sim at the given generation.
func StatusLabel(name string, generation int) string {
	if name == "" {
		name = "sim"
	}
	return fmt.Sprintf("%s  gen %d", name, generation)
}
