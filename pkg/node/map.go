// Package node defines the typed tree model shared by the parser,
// strategies and serializer: stable-identity nodes, parent/child links,
// attached YAML data and attached comments (spec §3).
package node

// ID is a stable node identifier, assigned in parse order (spec §3
// invariant 1: "given the same input, node ids ... are reproducible").
type ID int

// NodeKind distinguishes a claim from an argument reference in a map.
type NodeKind int

const (
	KindClaim NodeKind = iota
	KindArgument
)

// EdgeType is the relation connecting a MapNode to its parent.
type EdgeType int

const (
	EdgeNone EdgeType = iota
	EdgeSupport
	EdgeAttack
	EdgeUndercut
)

func (e EdgeType) String() string {
	switch e {
	case EdgeSupport:
		return "+"
	case EdgeAttack:
		return "-"
	case EdgeUndercut:
		return "_"
	default:
		return ""
	}
}

// MapNode is one claim or argument-reference node in an ArgumentMap.
type MapNode struct {
	ID   ID
	Kind NodeKind

	Label string
	Text  string
	YAML  *YAMLData

	Comments Comments

	EdgeToParent EdgeType
	// ParentNode is filled in by the parser as a back-reference to the
	// node's parent, or nil for a root. It is weak in the sense the
	// design notes intend: the tree's ownership lives entirely in
	// Roots/Children, so this field is only ever read, never used to walk
	// ownership, and a tree can still be deallocated as an ordinary tree.
	ParentNode *MapNode
	Children   []*MapNode

	// SourceOrder is this node's index in a left-to-right, depth-first
	// walk of the original input; used by strategies that must tie-break
	// siblings discovered through different traversal orders.
	SourceOrder int
}

// Rank is the node's distance from its root (root has rank 0).
func (n *MapNode) Rank() int {
	r := 0
	for p := n; p.ParentNode != nil; p = p.ParentNode {
		r++
	}
	return r
}

// MapTree is a parsed ArgumentMap: an ordered forest of root MapNodes.
type MapTree struct {
	Roots []*MapNode
	// ByID indexes every node in the tree by its stable id.
	ByID map[ID]*MapNode
	// StrayComments are top-level orphan comments with no node to attach
	// to; they render as document-level decorations (spec §4.B).
	StrayComments []string
}

// NewMapTree creates an empty tree ready for incremental construction by
// the parser.
func NewMapTree() *MapTree {
	return &MapTree{ByID: make(map[ID]*MapNode)}
}

// Add registers a node in the tree's id index. It does not attach the
// node to a parent; the parser does that directly via Children/ParentNode.
func (t *MapTree) Add(n *MapNode) {
	t.ByID[n.ID] = n
}

// Walk visits every node in the tree in depth-first, source order.
func (t *MapTree) Walk(visit func(*MapNode)) {
	var rec func(*MapNode)
	rec = func(n *MapNode) {
		visit(n)
		for _, c := range n.Children {
			rec(c)
		}
	}
	for _, r := range t.Roots {
		rec(r)
	}
}

// MaxRank returns the greatest rank of any node in the tree.
func (t *MapTree) MaxRank() int {
	max := 0
	t.Walk(func(n *MapNode) {
		if r := n.Rank(); r > max {
			max = r
		}
	})
	return max
}
