package strategy

import (
	"fmt"

	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/serializer"
	"github.com/debatelab/argdown-cotgen/pkg/view"
)

// RunMapViews renders one Step per view, in order, versioning v1..vN.
// explain is called with the view's 0-based index and must never return
// an empty string (spec §8 property 5).
func RunMapViews(tree *node.MapTree, views []*view.MapView, explain func(i int, v *view.MapView) string) []Step {
	steps := make([]Step, len(views))
	for i, v := range views {
		steps[i] = Step{
			Version:     fmt.Sprintf("v%d", i+1),
			Content:     serializer.RenderMap(tree, v),
			Explanation: explain(i, v),
		}
	}
	return steps
}

// RunArgViews renders one Step per view, in order, versioning v1..vN.
func RunArgViews(doc *node.ArgumentDoc, views []*view.ArgView, explain func(i int, v *view.ArgView) string) []Step {
	steps := make([]Step, len(views))
	for i, v := range views {
		steps[i] = Step{
			Version:     fmt.Sprintf("v%d", i+1),
			Content:     serializer.RenderArgument(doc, v),
			Explanation: explain(i, v),
		}
	}
	return steps
}
