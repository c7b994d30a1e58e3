package mapstrategy

import (
	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
	"github.com/debatelab/argdown-cotgen/pkg/view"
)

// DepthDiffusion begins with every proposition visible but flattened,
// and nests one more rank's worth of true parent/child structure per
// view until the real tree emerges (spec §4.E). It is a diffusion
// strategy, so unlike the others its view sequence is not required to
// grow monotonically node-by-node — every node is visible from v1; only
// its position in the render changes.
type DepthDiffusion struct{}

func (DepthDiffusion) Name() string { return "depth_diffusion" }

func (DepthDiffusion) Generate(tree *node.MapTree, cfg strategy.Config) ([]strategy.Step, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	maxRank := tree.MaxRank()
	var allNodes []*node.MapNode
	tree.Walk(func(n *node.MapNode) { allNodes = append(allNodes, n) })

	views := make([]*view.MapView, 0, maxRank+1)
	for allowed := 0; allowed <= maxRank; allowed++ {
		v := view.NewMapView()
		for _, n := range allNodes {
			v.Show(n.ID)
			if n.Rank() > allowed {
				v.Orphans[n.ID] = "??"
			}
		}
		if allowed == maxRank {
			v.ShowYAML, v.ShowComments = true, true
		}
		views = append(views, v)
	}

	explain := strategy.ExplanationPool(
		"Here is every claim and argument, not yet placed in the dialectical structure.",
		"Let me nest these one level deeper, now that I see how they connect.",
	)
	last := len(views) - 1
	return strategy.RunMapViews(tree, views, func(i int, v *view.MapView) string {
		if i == last {
			return "Every proposition now sits at its true depth, with YAML and comments restored."
		}
		return explain()
	}), nil
}
