package mapstrategy

import (
	"sort"

	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
)

// DepthFirst adds one node per view, in preorder DFS, breaking ties by
// source order (spec §4.E).
type DepthFirst struct{}

func (DepthFirst) Name() string { return "depth_first" }

func (DepthFirst) Generate(tree *node.MapTree, cfg strategy.Config) ([]strategy.Step, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	order := dfsOrder(tree)
	return runIncremental(tree, order, "I'll follow this line of reasoning all the way down before moving to the next."), nil
}

func dfsOrder(tree *node.MapTree) []*node.MapNode {
	roots := append([]*node.MapNode(nil), tree.Roots...)
	sort.Slice(roots, func(i, j int) bool { return roots[i].SourceOrder < roots[j].SourceOrder })

	var order []*node.MapNode
	var rec func(n *node.MapNode)
	rec = func(n *node.MapNode) {
		order = append(order, n)
		children := append([]*node.MapNode(nil), n.Children...)
		sort.Slice(children, func(i, j int) bool { return children[i].SourceOrder < children[j].SourceOrder })
		for _, c := range children {
			rec(c)
		}
	}
	for _, r := range roots {
		rec(r)
	}
	return order
}
