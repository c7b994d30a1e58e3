package argstrategy

import (
	"sort"

	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
	"github.com/debatelab/argdown-cotgen/pkg/view"
)

// ByRank reveals an argument conclusion-first: the final conclusion,
// then its direct premises, then recursively the sub-arguments behind
// any premise that is itself an intermediate conclusion (spec §4.F).
type ByRank struct{}

func (ByRank) Name() string { return "by_rank" }

func (ByRank) Generate(doc *node.ArgumentDoc, cfg strategy.Config) ([]strategy.Step, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	final := doc.FinalConclusion()
	if final == nil {
		return nil, strategyError("argument has no final conclusion")
	}
	byNumber := make(map[int]*node.Statement, len(doc.Statements))
	for _, s := range doc.Statements {
		byNumber[s.Number] = s
	}

	titleView := view.NewArgView()
	titleView.ShowTitleGist = true

	scaffold := view.NewArgView()
	scaffold.ShowTitleGist = true
	scaffold.VisibleNumbers = []int{final.Number}
	scaffold.PendingAfter[0] = 1

	views := []*view.ArgView{titleView, scaffold}

	visible := map[int]bool{final.Number: true}
	frontier := directInputsOf(doc, final)

	for len(frontier) > 0 {
		for _, n := range frontier {
			visible[n] = true
		}
		views = append(views, viewOf(doc, visible))

		var next []int
		for _, n := range frontier {
			s := byNumber[n]
			if s == nil || s.Role != node.RoleIntermediateConclusion {
				continue
			}
			for _, in := range directInputsOf(doc, s) {
				if !visible[in] {
					next = append(next, in)
				}
			}
		}
		frontier = next
	}

	withInference := viewOf(doc, visible)
	withInference.ShowInference = true
	withYAML := withInference.Clone()
	withYAML.ShowYAML = true
	withComments := withYAML.Clone()
	withComments.ShowComments = true
	views = append(views, withInference, withYAML, withComments)

	// One phrase per view: the expansion rounds between the scaffold and
	// the three closing views vary in number, so the list is built to fit.
	phrases := []string{
		"Let me start with the gist of this argument.",
		"Here is the conclusion I'm working toward.",
	}
	for i := 2; i < len(views)-3; i++ {
		if i == 2 {
			phrases = append(phrases, "These are the premises this conclusion rests on directly.")
		} else {
			phrases = append(phrases, "One of these premises is itself a conclusion; let me unpack its argument.")
		}
	}
	phrases = append(phrases,
		"Let me name the inference rule used at each step.",
		"I'll add the structured data attached to each step.",
	)
	explain := strategy.ExplanationPool(phrases...)
	last := len(views) - 1
	return strategy.RunArgViews(doc, views, func(i int, v *view.ArgView) string {
		if i == last {
			return "This reconstructs the argument exactly, working back from the conclusion."
		}
		return explain()
	}), nil
}

func viewOf(doc *node.ArgumentDoc, visible map[int]bool) *view.ArgView {
	v := view.NewArgView()
	v.ShowTitleGist = true
	for _, s := range doc.Statements {
		if visible[s.Number] {
			v.VisibleNumbers = append(v.VisibleNumbers, s.Number)
		}
	}
	return v
}

// directInputsOf returns the statement numbers a conclusion's inference
// directly draws on: its `uses:` YAML data when present, else the
// contiguous run of premise-role statements immediately preceding it,
// stopping at (and including) the first intermediate conclusion reached,
// since that statement's own premises belong to its own sub-argument, not
// to s's.
func directInputsOf(doc *node.ArgumentDoc, s *node.Statement) []int {
	if uses := s.UsesOf(); len(uses) > 0 {
		out := append([]int(nil), uses...)
		sort.Ints(out)
		return out
	}
	idx := -1
	for i, st := range doc.Statements {
		if st.Number == s.Number {
			idx = i
			break
		}
	}
	var out []int
	for i := idx - 1; i >= 0; i-- {
		prev := doc.Statements[i]
		switch prev.Role {
		case node.RolePremise:
			out = append(out, prev.Number)
			continue
		case node.RoleIntermediateConclusion:
			out = append(out, prev.Number)
		}
		break
	}
	sort.Ints(out)
	return out
}
