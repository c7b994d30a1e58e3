// Package serializer renders a parsed tree and a view over it back into
// Argdown source text (spec §3, §6). Rendering never consults the tree's
// full content beyond what the view marks visible: a view hides a
// strategy's not-yet-revealed detail, the serializer just draws what it
// is shown.
package serializer

import (
	"fmt"
	"strings"

	"github.com/debatelab/argdown-cotgen/pkg/node"
	"github.com/debatelab/argdown-cotgen/pkg/view"
)

// indentUnit is the number of spaces one level of map nesting advances
// by, matching Argdown's conventional indentation width.
const indentUnit = 4

// RenderMap renders the nodes a MapView marks visible, in tree order,
// with 4-space-per-rank indentation and edge markers on every non-root.
func RenderMap(tree *node.MapTree, v *view.MapView) string {
	var b strings.Builder

	for _, c := range tree.StrayComments {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	if len(tree.StrayComments) > 0 {
		b.WriteByte('\n')
	}

	for _, root := range tree.Roots {
		renderMapNode(&b, root, v, 0)
	}
	renderOrphans(&b, tree, v)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// renderOrphans renders, after the properly-nested tree, every visible
// node the view marks as an orphan: a flat, unnested entry prefixed by
// its marker instead of a real edge token (depth_diffusion, spec §4.E).
func renderOrphans(b *strings.Builder, tree *node.MapTree, v *view.MapView) {
	if len(v.Orphans) == 0 {
		return
	}
	var ids []node.ID
	for id := range v.Orphans {
		ids = append(ids, id)
	}
	sortByBYIDSourceOrder(tree, ids)
	for _, id := range ids {
		n := tree.ByID[id]
		if n == nil {
			continue
		}
		b.WriteString(v.Orphans[id])
		b.WriteString(" ")
		writeMapLabel(b, n)
		writeInlinePropositionText(b, n.Text, n.Label != "")
		b.WriteByte('\n')
	}
}

// isRenderable reports whether a child node will actually produce output
// under renderMapNode: visible, and not elided into the flat orphan pass.
func isRenderable(v *view.MapView, id node.ID) bool {
	return v.Has(id) && v.Orphans[id] == ""
}

func sortByBYIDSourceOrder(tree *node.MapTree, ids []node.ID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0; j-- {
			a, b := tree.ByID[ids[j-1]], tree.ByID[ids[j]]
			if a == nil || b == nil || a.SourceOrder <= b.SourceOrder {
				break
			}
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// renderMapNode writes n's own line, then (after a single separating
// blank line) its visible, non-orphan children in order. Siblings never
// get a blank line between each other; the one blank line a node can
// introduce is the block separator ahead of its own first child.
func renderMapNode(b *strings.Builder, n *node.MapNode, v *view.MapView, depth int) {
	if !isRenderable(v, n.ID) {
		return
	}

	if v.ShowComments {
		writeCommentGroup(b, n.Comments.Above, depth*indentUnit)
	}

	indent := strings.Repeat(" ", depth*indentUnit)
	b.WriteString(indent)
	if depth > 0 {
		b.WriteString("<")
		b.WriteString(displayEdge(n, v).String())
		b.WriteString(" ")
	}
	writeMapLabel(b, n)
	writeInlinePropositionText(b, n.Text, n.Label != "")

	if v.ShowYAML && n.YAML != nil {
		b.WriteString(" ")
		b.WriteString(n.YAML.Render())
	}
	if v.ShowComments {
		writeInlineComment(b, n.Comments.Inline)
	}
	b.WriteByte('\n')

	any := false
	for _, c := range n.Children {
		if isRenderable(v, c.ID) {
			any = true
			break
		}
	}
	if any {
		b.WriteByte('\n')
	}
	for _, c := range n.Children {
		renderMapNode(b, c, v, depth+1)
	}

	if ph, ok := v.Placeholders[n.ID]; ok {
		if !any {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", (depth+1)*indentUnit))
		b.WriteString(ph)
		b.WriteByte('\n')
	}

	if v.ShowComments {
		writeCommentGroup(b, n.Comments.Below, depth*indentUnit)
	}
}

func displayEdge(n *node.MapNode, v *view.MapView) node.EdgeType {
	if e, ok := v.EdgeOverride[n.ID]; ok {
		return e
	}
	return n.EdgeToParent
}

func writeMapLabel(b *strings.Builder, n *node.MapNode) {
	if n.Label == "" {
		return
	}
	open, close := "[", "]"
	if n.Kind == node.KindArgument {
		open, close = "<", ">"
	}
	b.WriteString(open)
	b.WriteString(n.Label)
	b.WriteString(close)
	if n.Text != "" {
		b.WriteString(":")
	}
}

func writeInlinePropositionText(b *strings.Builder, text string, hasLabel bool) {
	if text == "" {
		return
	}
	if hasLabel {
		b.WriteString(" ")
	}
	b.WriteString(text)
}

func writeInlineComment(b *strings.Builder, g *node.CommentGroup) {
	if g == nil {
		return
	}
	for _, c := range g.Comments {
		b.WriteString("  ")
		b.WriteString(c)
	}
}

func writeCommentGroup(b *strings.Builder, g *node.CommentGroup, indent int) {
	if g == nil {
		return
	}
	pad := strings.Repeat(" ", indent)
	for _, c := range g.Comments {
		b.WriteString(pad)
		b.WriteString(c)
		b.WriteByte('\n')
	}
}

// RenderArgument renders the statements an ArgView marks visible, in the
// order the view lists them, renumbering consecutively and inserting any
// requested "(??)" placeholder premise lines (spec §4.F).
func RenderArgument(doc *node.ArgumentDoc, v *view.ArgView) string {
	var b strings.Builder

	if v.ShowTitleGist && doc.TitleGist != "" {
		if v.ShowComments {
			writeCommentGroup(&b, doc.TitleGistComments.Above, 0)
		}
		b.WriteString(doc.TitleGist)
		b.WriteByte('\n')
		b.WriteByte('\n')
	}

	byNumber := make(map[int]*node.Statement, len(doc.Statements))
	for _, s := range doc.Statements {
		byNumber[s.Number] = s
	}

	out := 1
	if n := v.PendingAfter[0]; n > 0 {
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "(%d) (??)\n", out)
			out++
		}
	}

	var lastInference *node.Inference
	for idx, num := range v.VisibleNumbers {
		s := byNumber[num]
		if s == nil {
			continue
		}

		if s.Inference != nil && s.Inference != lastInference {
			writeInferenceSeparator(&b, s.Inference, v)
			lastInference = s.Inference
		}

		if v.ShowComments {
			writeCommentGroup(&b, s.Comments.Above, 0)
		}
		fmt.Fprintf(&b, "(%d) ", out)
		out++
		b.WriteString(s.Text)
		if v.ShowYAML && s.YAML != nil {
			b.WriteString(" ")
			b.WriteString(s.YAML.Render())
		}
		if v.ShowComments {
			writeInlineComment(&b, s.Comments.Inline)
		}
		b.WriteByte('\n')

		if n := v.PendingAfter[num]; n > 0 {
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, "(%d) (??)\n", out)
				out++
			}
		}
		_ = idx
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeInferenceSeparator(b *strings.Builder, inf *node.Inference, v *view.ArgView) {
	if v.ShowComments {
		writeCommentGroup(b, inf.Comments.Above, 0)
	}
	if inf.BareSeparator != "" {
		b.WriteString(inf.BareSeparator)
		b.WriteByte('\n')
		return
	}
	b.WriteString("-- ")
	if v.ShowInference && inf.RuleText != "" {
		b.WriteString(inf.RuleText)
		b.WriteString(" ")
	}
	if v.ShowYAML && inf.YAML != nil {
		b.WriteString(inf.YAML.Render())
		b.WriteString(" ")
	}
	b.WriteString("--\n")
}
