package ui

import (
	"testing"

	"github.com/oechslein/AdventOfCode2024/internal/sims/elementary"
)

func TestStatusLines(t *testing.T) {
	sim := elementary.New(elementary.Config{Width: 16, Height: 8, Rule: 30})
	lines := StatusLines(sim, 12, true)

	want := []string{"elementary 16x8", "gen 12 (paused)", "w=16", "h=8", "topology=bounded", "rule=30"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
