package strategy

// Placeholder comment text, centralized so strategy packages share one
// phrasing table and tests can assert the pool's coverage (design notes
// §9). The serializer only ever writes whatever the view's Placeholders
// map hands it; these constants are just the shared producers.
const (
	PlaceholderFirstChildren   = "// Arguments need to be added here."
	PlaceholderMoreChildren    = "// More arguments might need to be added here."
	PlaceholderPremisesLater   = "// Premises will be added later"
	PlaceholderPendingDepth    = "// ?? deeper structure pending"
	PlaceholderAttackerPending = "// Objections may be added here."
)

// ExplanationPool returns a cycling phrase source for a strategy's
// per-stage explanations.
func ExplanationPool(phrases ...string) func() string {
	p := newPhrasePool(phrases)
	return p.take
}
