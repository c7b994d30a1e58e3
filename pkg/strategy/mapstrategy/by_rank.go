// Package mapstrategy implements the ArgumentMap reconstruction
// strategies of spec §4.E.
package mapstrategy

import (
	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
	"github.com/debatelab/argdown-cotgen/pkg/view"
)

// ByRank builds the map rank-by-rank: roots first, then every node of
// rank 1, then rank 2, and so on (spec §4.E).
type ByRank struct{}

func (ByRank) Name() string { return "by_rank" }

func (ByRank) Generate(tree *node.MapTree, cfg strategy.Config) ([]strategy.Step, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	maxRank := tree.MaxRank()
	views := make([]*view.MapView, 0, maxRank+1)

	v1 := view.NewMapView()
	for _, r := range tree.Roots {
		v1.Show(r.ID)
	}
	if maxRank == 0 {
		v1.ShowYAML, v1.ShowComments = true, true
	} else {
		markChildPlaceholders(tree, v1, 0)
	}
	views = append(views, v1)

	// The r == maxRank iteration doubles as the final view: it shows
	// every node already, so it also turns on YAML/comments rather than
	// appending a separate all-attachments step (spec §8 S1: a two-level
	// map yields exactly 3 steps, not 4).
	for r := 1; r <= maxRank; r++ {
		v := views[len(views)-1].Clone()
		v.Placeholders = map[node.ID]string{}
		tree.Walk(func(n *node.MapNode) {
			if n.Rank() <= r {
				v.Show(n.ID)
			}
		})
		if r == maxRank {
			v.ShowYAML, v.ShowComments = true, true
		} else {
			markChildPlaceholders(tree, v, r)
		}
		views = append(views, v)
	}

	explain := explanationCycle()
	last := len(views) - 1
	steps := strategy.RunMapViews(tree, views, func(i int, v *view.MapView) string {
		if i == last {
			return "This is the complete map, with every YAML block and comment restored."
		}
		return explain()
	})
	return steps, nil
}

// markChildPlaceholders sets, for every node visible in v at exactly
// rank r, a placeholder comment if that node has children not yet
// visible at this stage (i.e. below the frontier rank).
func markChildPlaceholders(tree *node.MapTree, v *view.MapView, frontierRank int) {
	tree.Walk(func(n *node.MapNode) {
		if !v.Has(n.ID) || n.Rank() != frontierRank {
			return
		}
		if len(n.Children) == 0 {
			return
		}
		allVisible := true
		for _, c := range n.Children {
			if !v.Has(c.ID) {
				allVisible = false
				break
			}
		}
		if allVisible {
			return
		}
		if frontierRank == 0 {
			v.Placeholders[n.ID] = strategy.PlaceholderFirstChildren
		} else {
			v.Placeholders[n.ID] = strategy.PlaceholderMoreChildren
		}
	})
}

func explanationCycle() func() string {
	return strategy.ExplanationPool(
		"I'll add all first-order reasons and arguments.",
		"Now I'll add the next layer of supporting and attacking material.",
		"Let's bring in the remaining deeper reasons.",
	)
}
