package lexer

// Kind classifies a single line of Argdown source by its leading token.
type Kind int

const (
	KindBlank Kind = iota
	KindRootClaim
	KindClaimRef
	KindArgumentRef
	KindSupportEdge
	KindAttackEdge
	KindUndercutEdge
	KindPremise
	KindConclusion
	KindInferenceSeparator
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindRootClaim:
		return "root_claim"
	case KindClaimRef:
		return "claim_ref"
	case KindArgumentRef:
		return "argument_ref"
	case KindSupportEdge:
		return "support_edge"
	case KindAttackEdge:
		return "attack_edge"
	case KindUndercutEdge:
		return "undercut_edge"
	case KindPremise:
		return "premise"
	case KindConclusion:
		return "conclusion"
	case KindInferenceSeparator:
		return "inference_separator"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Line is the lexer's output for a single physical line of input.
//
// Raw preserves the exact original text (minus the trailing newline) so
// the serializer can reproduce spacing byte-for-byte; every other field is
// a parsed view onto Raw.
type Line struct {
	Raw    string
	Indent int
	Kind   Kind

	// Label is the bracketed/angle-bracketed label for claims, argument
	// refs and edges (without the brackets).
	Label string
	// Text is the proposition text with the label, edge marker and
	// trailing YAML/comment stripped.
	Text string
	// YAML is the raw flow-mapping text (including braces) trailing the
	// line, if any.
	YAML string
	// Comment is the raw comment text (including the // or /* */), if the
	// line carries a trailing or standalone comment.
	Comment string
	// Number is the statement number for KindPremise/KindConclusion lines.
	Number int
	// InfoText is the text between the dashes of a named inference
	// separator ("-- Modus Ponens --").
	InfoText string
	// BareSeparator holds the exact dash run of a bare inference separator
	// ("-----", five or more dashes with no rule text), so the serializer
	// can reproduce it byte-for-byte instead of rewriting it as "-- --".
	BareSeparator string
	// IsArgument is true when an edge line's target is an argument
	// reference (`<Label>`) rather than a claim (`[Label]`).
	IsArgument bool
	// HasLabel reports whether Label was present at all (edge lines may
	// target an unlabeled proposition, though this is unusual in practice).
	HasLabel bool
}
