package ui

import (
	"fmt"

	"github.com/oechslein/AdventOfCode2024/internal/core"
)

// StatusLines returns the text shown next to a running simulation: a title
// line, the run state and one line per tunable parameter.
func StatusLines(sim core.Sim, generation int, paused bool) []string {
	size := sim.Size()
	state := "running"
	if paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H),
		fmt.Sprintf("gen %d (%s)", generation, state),
	}
	if provider, ok := sim.(core.ParameterProvider); ok {
		for _, p := range provider.Parameters() {
			lines = append(lines, fmt.Sprintf("%s=%s", p.Key, p.Value))
		}
	}
	return lines
}
