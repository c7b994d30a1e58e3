package mapstrategy

import (
	"sort"

	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
	"github.com/debatelab/argdown-cotgen/pkg/view"
)

// BreadthFirst adds one node per view, in BFS order, breaking ties
// within a level by original source order (spec §4.E).
type BreadthFirst struct{}

func (BreadthFirst) Name() string { return "breadth_first" }

func (BreadthFirst) Generate(tree *node.MapTree, cfg strategy.Config) ([]strategy.Step, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	order := bfsOrder(tree)
	return runIncremental(tree, order, "I'll add the next node, level by level, nearest reasons first."), nil
}

func bfsOrder(tree *node.MapTree) []*node.MapNode {
	roots := append([]*node.MapNode(nil), tree.Roots...)
	sort.Slice(roots, func(i, j int) bool { return roots[i].SourceOrder < roots[j].SourceOrder })

	var order []*node.MapNode
	queue := roots
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		children := append([]*node.MapNode(nil), n.Children...)
		sort.Slice(children, func(i, j int) bool { return children[i].SourceOrder < children[j].SourceOrder })
		queue = append(queue, children...)
	}
	return order
}

// runIncremental is shared by breadth_first and depth_first: both add
// exactly one node per view, in the order given, with a placeholder under
// every visible node that still has a child not yet visible.
func runIncremental(tree *node.MapTree, order []*node.MapNode, explanation string) []strategy.Step {
	views := make([]*view.MapView, 0, len(order)+1)
	cur := view.NewMapView()
	for _, n := range order {
		cur = cur.Clone()
		cur.Placeholders = map[node.ID]string{}
		cur.Show(n.ID)
		for _, o := range order {
			if !cur.Has(o.ID) {
				continue
			}
			markPendingChildren(o, cur)
		}
		views = append(views, cur)
	}
	if len(views) > 0 {
		final := views[len(views)-1].Clone()
		final.Placeholders = map[node.ID]string{}
		final.ShowYAML, final.ShowComments = true, true
		views[len(views)-1] = final
	}

	explain := strategy.ExplanationPool(explanation)
	last := len(views) - 1
	return strategy.RunMapViews(tree, views, func(i int, v *view.MapView) string {
		if i == last {
			return "This is the complete map, with every YAML block and comment restored."
		}
		return explain()
	})
}

func markPendingChildren(n *node.MapNode, v *view.MapView) {
	if len(n.Children) == 0 {
		return
	}
	for _, c := range n.Children {
		if !v.Has(c.ID) {
			v.Placeholders[n.ID] = strategy.PlaceholderMoreChildren
			return
		}
	}
}
