// Package argstrategy implements the Argument reconstruction strategies
// of spec §4.F.
package argstrategy

import (
	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
	"github.com/debatelab/argdown-cotgen/pkg/view"
)

// ByFeature reveals an argument feature-by-feature: title, then a bare
// scaffold, then premises, then sub-arguments, then inference info,
// YAML, and finally comments (spec §4.F, 7 stages). With DeferTitle set,
// the title+gist stage moves to the end instead of the start, per the
// documented variant.
type ByFeature struct {
	DeferTitle bool
}

func (ByFeature) Name() string { return "by_feature" }

func (bf ByFeature) Generate(doc *node.ArgumentDoc, cfg strategy.Config) ([]strategy.Step, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	final := doc.FinalConclusion()
	if final == nil {
		return nil, strategyError("argument has no final conclusion")
	}

	allOrdered := orderedNumbers(doc)
	premiseNums := numbersWithRole(doc, node.RolePremise)

	titleView := view.NewArgView()
	titleView.ShowTitleGist = true

	scaffold := view.NewArgView()
	scaffold.VisibleNumbers = []int{final.Number}
	scaffold.PendingAfter[0] = 1

	flatPremises := view.NewArgView()
	flatPremises.VisibleNumbers = append(append([]int{}, premiseNums...), final.Number)

	withSubArguments := view.NewArgView()
	withSubArguments.VisibleNumbers = allOrdered

	withInference := withSubArguments.Clone()
	withInference.ShowInference = true

	withYAML := withInference.Clone()
	withYAML.ShowYAML = true

	withComments := withYAML.Clone()
	withComments.ShowComments = true

	var views []*view.ArgView
	if bf.DeferTitle {
		scaffold2 := scaffold.Clone()
		flatPremises2 := flatPremises.Clone()
		withSubArguments2 := withSubArguments.Clone()
		withInference2 := withInference.Clone()
		withYAML2 := withYAML.Clone()
		finalView := withComments.Clone()
		finalView.ShowTitleGist = true
		views = []*view.ArgView{scaffold2, flatPremises2, withSubArguments2, withInference2, withYAML2, finalView}
	} else {
		for _, v := range []*view.ArgView{scaffold, flatPremises, withSubArguments, withInference, withYAML, withComments} {
			v.ShowTitleGist = true
		}
		views = []*view.ArgView{titleView, scaffold, flatPremises, withSubArguments, withInference, withYAML, withComments}
	}

	explain := strategy.ExplanationPool(
		"First, let me state the overall gist of this argument.",
		"I'll sketch the conclusion I'm aiming for, with the premises still to come.",
		"Now let me lay out all the premises this argument rests on.",
		"Some of these premises are themselves conclusions of sub-arguments; let me show those steps.",
		"Let me name the inference rule used at each step.",
		"I'll add the structured data attached to each step.",
		"Finally, the comments and any remaining detail.",
	)
	if bf.DeferTitle {
		explain() // no title-only view: skip the gist phrase
	}
	last := len(views) - 1
	return strategy.RunArgViews(doc, views, func(i int, v *view.ArgView) string {
		if i == last {
			return "This reconstructs the argument exactly, feature by feature."
		}
		return explain()
	}), nil
}

func orderedNumbers(doc *node.ArgumentDoc) []int {
	nums := make([]int, 0, len(doc.Statements))
	for _, s := range doc.Statements {
		nums = append(nums, s.Number)
	}
	return nums
}

func numbersWithRole(doc *node.ArgumentDoc, role node.StatementRole) []int {
	var nums []int
	for _, s := range doc.Statements {
		if s.Role == role {
			nums = append(nums, s.Number)
		}
	}
	return nums
}
