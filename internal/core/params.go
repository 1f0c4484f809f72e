package core

import (
	"fmt"
	"strconv"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeEnum denotes parameters limited to a fixed set of words.
	ParamTypeEnum ParamType = "enum"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Type        ParamType
	Value       string
	Description string
}

// ParameterProvider is implemented by sim configs that can list their
// tunables, e.g. for `gridtool sims`.
type ParameterProvider interface {
	Parameters() []Parameter
}

// GridParameters describes the keys understood by ParseGridParams.
func GridParameters(w, h int, opts grid.Options) []Parameter {
	return []Parameter{
		{Key: "w", Type: ParamTypeInt, Value: strconv.Itoa(w), Description: "grid width in cells"},
		{Key: "h", Type: ParamTypeInt, Value: strconv.Itoa(h), Description: "grid height in cells"},
		{Key: "topology", Type: ParamTypeEnum, Value: opts.Topology.String(), Description: "bounded or torus"},
		{Key: "neighborhood", Type: ParamTypeEnum, Value: opts.Neighborhood.String(), Description: "square, orthogonal or diagonal"},
	}
}

// ParseGridParams overrides w, h and opts from the "w", "h", "topology" and
// "neighborhood" keys of cfg. Invalid values are ignored and the defaults
// kept.
func ParseGridParams(cfg map[string]string, w, h *int, opts *grid.Options) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*w = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*h = parsed
		}
	}
	if v, ok := cfg["topology"]; ok {
		var t grid.Topology
		if err := t.UnmarshalText([]byte(v)); err == nil {
			opts.Topology = t
		}
	}
	if v, ok := cfg["neighborhood"]; ok {
		var n grid.Neighborhood
		if err := n.UnmarshalText([]byte(v)); err == nil {
			opts.Neighborhood = n
		}
	}
}

// FormatParameter renders p as "key=value (type): description".
func FormatParameter(p Parameter) string {
	return fmt.Sprintf("%s=%s (%s): %s", p.Key, p.Value, p.Type, p.Description)
}
