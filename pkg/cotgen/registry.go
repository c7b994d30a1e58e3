// Package cotgen wires the parser, strategies and formatter together
// behind a single entry point, and owns the pipe_type → strategy
// registry (spec §4.H, design notes §9).
package cotgen

import (
	"github.com/debatelab/argdown-cotgen/pkg/parser"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
	"github.com/debatelab/argdown-cotgen/pkg/strategy/argstrategy"
	"github.com/debatelab/argdown-cotgen/pkg/strategy/mapstrategy"
)

// registryEntry binds one pipe_type to the parser branch it requires
// and the strategy constructor that consumes that branch's tree shape.
type registryEntry struct {
	kind    parser.InputKind
	mapNew  func() strategy.MapStrategy
	argNew  func() strategy.ArgStrategy
}

// registry maps pipe_type string to its registryEntry. It lives in
// cotgen, not in pkg/strategy, because it must reference both
// mapstrategy and argstrategy constructors without either of those
// importing the other.
var registry = map[string]registryEntry{
	"map.by_rank":                  {kind: parser.KindMap, mapNew: func() strategy.MapStrategy { return mapstrategy.ByRank{} }},
	"map.breadth_first":            {kind: parser.KindMap, mapNew: func() strategy.MapStrategy { return mapstrategy.BreadthFirst{} }},
	"map.depth_first":              {kind: parser.KindMap, mapNew: func() strategy.MapStrategy { return mapstrategy.DepthFirst{} }},
	"map.by_objection":             {kind: parser.KindMap, mapNew: func() strategy.MapStrategy { return mapstrategy.ByObjection{} }},
	"map.depth_diffusion":          {kind: parser.KindMap, mapNew: func() strategy.MapStrategy { return mapstrategy.DepthDiffusion{} }},
	"map.random_diffusion":         {kind: parser.KindMap, mapNew: func() strategy.MapStrategy { return mapstrategy.RandomDiffusion{} }},
	"argument.by_feature":          {kind: parser.KindArgument, argNew: func() strategy.ArgStrategy { return argstrategy.ByFeature{} }},
	"argument.by_feature_deferred": {kind: parser.KindArgument, argNew: func() strategy.ArgStrategy { return argstrategy.ByFeature{DeferTitle: true} }},
	"argument.by_rank":             {kind: parser.KindArgument, argNew: func() strategy.ArgStrategy { return argstrategy.ByRank{} }},
}

// KnownPipeTypes lists every registered pipe_type, for help text and
// config validation messages.
func KnownPipeTypes() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}
