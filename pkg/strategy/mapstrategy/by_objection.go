package mapstrategy

import (
	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
	"github.com/debatelab/argdown-cotgen/pkg/view"
)

// ByObjection grows the map dialectically: the supporting scaffold
// first, then objections to it, then objections to those objections,
// until a fixed point (spec §4.E). Per the stated safe default (design
// notes §9), undercuts count as attack-like for inclusion purposes.
type ByObjection struct{}

func (ByObjection) Name() string { return "by_objection" }

func (ByObjection) Generate(tree *node.MapTree, cfg strategy.Config) ([]strategy.Step, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	v1 := view.NewMapView()
	for _, r := range tree.Roots {
		v1.Show(r.ID)
	}

	v2 := v1.Clone()
	for _, r := range tree.Roots {
		addSupportClosure(r, v2)
	}

	views := []*view.MapView{v1, v2}
	for {
		attackers := attackersTargeting(tree, views[len(views)-1])
		if len(attackers) == 0 {
			break
		}
		next := views[len(views)-1].Clone()
		for _, a := range attackers {
			next.Show(a.ID)
			addSupportClosure(a, next)
		}
		views = append(views, next)
	}

	final := views[len(views)-1].Clone()
	final.ShowYAML, final.ShowComments = true, true
	views = append(views, final)

	markObjectionPlaceholders(tree, views)

	explain := strategy.ExplanationPool(
		"I'll start from the main supporting scaffold.",
		"Now let's bring in the objections this argument faces.",
		"And the objections to those objections, in turn.",
	)
	last := len(views) - 1
	return strategy.RunMapViews(tree, views, func(i int, v *view.MapView) string {
		if i == last {
			return "This is the complete dialectical structure, with every YAML block and comment restored."
		}
		return explain()
	}), nil
}

// addSupportClosure adds n and every descendant reachable through a
// chain of support-only edges.
func addSupportClosure(n *node.MapNode, v *view.MapView) {
	v.Show(n.ID)
	for _, c := range n.Children {
		if c.EdgeToParent == node.EdgeSupport {
			addSupportClosure(c, v)
		}
	}
}

// isAttackLike reports whether an edge counts toward objection
// inclusion; undercuts are treated as attack-like (design notes §9).
func isAttackLike(e node.EdgeType) bool {
	return e == node.EdgeAttack || e == node.EdgeUndercut
}

func attackersTargeting(tree *node.MapTree, v *view.MapView) []*node.MapNode {
	var out []*node.MapNode
	tree.Walk(func(n *node.MapNode) {
		if v.Has(n.ID) {
			return
		}
		if n.ParentNode == nil || !v.Has(n.ParentNode.ID) {
			return
		}
		if isAttackLike(n.EdgeToParent) {
			out = append(out, n)
		}
	})
	return out
}

func markObjectionPlaceholders(tree *node.MapTree, views []*view.MapView) {
	for i := 0; i < len(views)-1; i++ {
		v := views[i]
		if v.Placeholders == nil {
			v.Placeholders = map[node.ID]string{}
		}
		tree.Walk(func(n *node.MapNode) {
			if !v.Has(n.ID) {
				return
			}
			for _, c := range n.Children {
				if isAttackLike(c.EdgeToParent) && !v.Has(c.ID) {
					v.Placeholders[n.ID] = strategy.PlaceholderAttackerPending
					return
				}
			}
		})
	}
}
