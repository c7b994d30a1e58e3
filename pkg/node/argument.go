package node

// StatementRole distinguishes the three roles a numbered statement can
// play in an Argument (spec §3).
type StatementRole int

const (
	RolePremise StatementRole = iota
	RoleIntermediateConclusion
	RoleFinalConclusion
)

// Inference is the rule applied between a premise set and the
// conclusion that follows it.
type Inference struct {
	RuleText string
	// YAML holds the structured {uses:[...], with:..., from:[...]} data
	// attached to an inference separator, when present.
	YAML *YAMLData
	// BareSeparator holds the exact dash run of a bare separator
	// ("-----"), when the original had no rule text or YAML at all. A
	// bare separator never carries RuleText or YAML (spec §6).
	BareSeparator string

	Comments Comments
}

// Statement is one numbered proposition in an ArgumentDoc.
type Statement struct {
	// Number is the statement's position in the final, fully-reconstructed
	// rendering; strategies renumber per-view from the visible subset
	// rather than storing a per-view number here (design notes §9).
	Number int
	Role   StatementRole

	Label string
	Text  string
	YAML  *YAMLData

	Comments Comments

	// Inference is the inference that produced this statement, present
	// only for intermediate/final conclusions.
	Inference *Inference
}

// ArgumentDoc is a parsed premise-conclusion Argument.
type ArgumentDoc struct {
	TitleGist string
	// TitleGistComments holds comments attached to the preamble line.
	TitleGistComments Comments

	Statements []*Statement
}

// FinalConclusion returns the document's single final conclusion, or nil
// if the document is malformed.
func (d *ArgumentDoc) FinalConclusion() *Statement {
	for _, s := range d.Statements {
		if s.Role == RoleFinalConclusion {
			return s
		}
	}
	return nil
}

// Premises returns every statement with role RolePremise, in document order.
func (d *ArgumentDoc) Premises() []*Statement {
	var out []*Statement
	for _, s := range d.Statements {
		if s.Role == RolePremise {
			out = append(out, s)
		}
	}
	return out
}

// UsesOf returns the premise numbers an intermediate/final conclusion's
// inference declares it uses, from YAML `uses:` data when present, or nil.
func (s *Statement) UsesOf() []int {
	if s.Inference == nil || s.Inference.YAML == nil {
		return nil
	}
	// Inline inference YAML is structured (uses/with/from), not a flat
	// flow mapping of scalars, so it is decoded directly rather than
	// through YAMLData's flat Render/Keys helpers.
	return s.Inference.YAML.IntSliceField("uses")
}
