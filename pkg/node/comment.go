package node

// CommentPosition indicates where a comment attaches relative to a node:
// the three positions Argdown actually uses (§3: "above, inline, below").
type CommentPosition int

const (
	CommentPositionAbove CommentPosition = iota
	CommentPositionInline
	CommentPositionBelow
)

// CommentGroup is an ordered run of raw comment lines sharing one
// attachment position.
type CommentGroup struct {
	Comments []string
}

// Comments holds a node's above/inline/below comment groups.
type Comments struct {
	Above  *CommentGroup
	Inline *CommentGroup
	Below  *CommentGroup
}

// Add appends a comment line to the group for the given position,
// creating the group on first use.
func (c *Comments) Add(pos CommentPosition, text string) {
	var group **CommentGroup
	switch pos {
	case CommentPositionAbove:
		group = &c.Above
	case CommentPositionInline:
		group = &c.Inline
	case CommentPositionBelow:
		group = &c.Below
	default:
		return
	}
	if *group == nil {
		*group = &CommentGroup{}
	}
	(*group).Comments = append((*group).Comments, text)
}

// IsEmpty reports whether no comments are attached at all.
func (c *Comments) IsEmpty() bool {
	return c == nil || (c.Above == nil && c.Inline == nil && c.Below == nil)
}
