package parser

import (
	"github.com/debatelab/argdown-cotgen/pkg/errors"
	"github.com/debatelab/argdown-cotgen/pkg/lexer"
	"github.com/debatelab/argdown-cotgen/pkg/node"
)

// stackEntry is one ancestor on the indentation stack used while
// assembling an ArgumentMap.
type stackEntry struct {
	indent int
	n      *node.MapNode
}

// ParseMap implements the map branch of spec §4.B: a stack-based
// indentation parse where each edge line's indent relative to its
// predecessors picks its parent (the most recent ancestor with strictly
// smaller indent).
func ParseMap(lines []lexer.Line) (*node.MapTree, error) {
	tree := node.NewMapTree()

	var stack []stackEntry
	var pendingAbove []string
	var nextID node.ID = 1
	sourceOrder := 0
	var lastNode *node.MapNode

	attachComments := func(target *node.MapNode) {
		for _, c := range pendingAbove {
			target.Comments.Add(node.CommentPositionAbove, c)
		}
		pendingAbove = nil
	}

	for i, ln := range lines {
		switch ln.Kind {
		case lexer.KindBlank:
			continue

		case lexer.KindComment:
			pendingAbove = append(pendingAbove, ln.Comment)
			continue

		case lexer.KindRootClaim, lexer.KindClaimRef, lexer.KindArgumentRef:
			if ln.Indent != 0 {
				return nil, errors.ParseError(i+1, "proposition at non-zero indent must be reached via an edge (<+, <- or <_)")
			}
			n := newMapNode(nextID, ln)
			nextID++
			n.SourceOrder = sourceOrder
			sourceOrder++
			attachComments(n)
			if err := attachTrailing(n, ln, i); err != nil {
				return nil, err
			}
			tree.Roots = append(tree.Roots, n)
			tree.Add(n)
			stack = []stackEntry{{indent: 0, n: n}}
			lastNode = n

		case lexer.KindSupportEdge, lexer.KindAttackEdge, lexer.KindUndercutEdge:
			for len(stack) > 0 && stack[len(stack)-1].indent >= ln.Indent {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, errors.ParseError(i+1, "edge at depth 0 has no enclosing parent")
			}
			parent := stack[len(stack)-1].n

			n := newMapNode(nextID, ln)
			nextID++
			n.SourceOrder = sourceOrder
			sourceOrder++
			n.EdgeToParent = edgeTypeOf(ln.Kind)
			n.ParentNode = parent
			attachComments(n)
			if err := attachTrailing(n, ln, i); err != nil {
				return nil, err
			}
			parent.Children = append(parent.Children, n)
			tree.Add(n)
			stack = append(stack, stackEntry{indent: ln.Indent, n: n})
			lastNode = n

		default:
			// Inference separators, premises etc. cannot appear in a map;
			// silently skip blank-ish stragglers rather than failing hard,
			// matching the lexer's permissive fallback classification.
			continue
		}
	}

	// Any comments left pending at EOF are stray below-comments on the
	// last node seen, or document-level decorations if the map never
	// produced a node at all.
	if len(pendingAbove) > 0 {
		if lastNode != nil {
			for _, c := range pendingAbove {
				lastNode.Comments.Add(node.CommentPositionBelow, c)
			}
		} else {
			tree.StrayComments = append(tree.StrayComments, pendingAbove...)
		}
	}

	return tree, nil
}

func newMapNode(id node.ID, ln lexer.Line) *node.MapNode {
	kind := node.KindClaim
	if ln.IsArgument {
		kind = node.KindArgument
	}
	return &node.MapNode{
		ID:    id,
		Kind:  kind,
		Label: ln.Label,
		Text:  ln.Text,
	}
}

func attachTrailing(n *node.MapNode, ln lexer.Line, lineNo int) error {
	if ln.Comment != "" {
		n.Comments.Add(node.CommentPositionInline, ln.Comment)
	}
	if ln.YAML != "" {
		data, err := node.ParseYAMLData(ln.YAML)
		if err != nil {
			return errors.ParseError(lineNo+1, err.Error())
		}
		n.YAML = data
	}
	return nil
}

func edgeTypeOf(k lexer.Kind) node.EdgeType {
	switch k {
	case lexer.KindSupportEdge:
		return node.EdgeSupport
	case lexer.KindAttackEdge:
		return node.EdgeAttack
	case lexer.KindUndercutEdge:
		return node.EdgeUndercut
	default:
		return node.EdgeNone
	}
}
