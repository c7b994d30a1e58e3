package cotgen

import (
	"strings"
	"testing"

	"github.com/debatelab/argdown-cotgen/pkg/errors"
)

func TestGenerateSingleRootClaimProducesOneVersionTrace(t *testing.T) {
	const input = "[Root]: Root claim.\n"
	out, err := Generate(input, Config{PipeType: "map.by_rank"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(out, preamble) {
		t.Errorf("trace should open with the preamble, got:\n%s", out)
	}
	if strings.Count(out, "```argdown") != 1 {
		t.Errorf("a single-root map should need exactly one fenced block, got:\n%s", out)
	}
	if !strings.Contains(out, "may submit version='v1'") {
		t.Errorf("closing sentence should cite v1, got:\n%s", out)
	}
}

func TestGenerateRoundTripsYAMLAndComments(t *testing.T) {
	const input = `[Root]: Root claim. {certainty: 0.9}  // a note

    <+ [Support]: A supporting claim.
`
	out, err := Generate(input, Config{PipeType: "map.by_rank"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "certainty: 0.9") {
		t.Errorf("trace should eventually reveal the YAML block, got:\n%s", out)
	}
	if !strings.Contains(out, "a note") {
		t.Errorf("trace should eventually reveal the comment, got:\n%s", out)
	}
}

func TestGenerateWithFullAbortionProbabilityInjectsARestart(t *testing.T) {
	const input = `[Root]: Root claim.

    <+ [Support]: A supporting claim.
    <- [Objection]: An objection.

        <+ [SubSupport]: Support for the objection.
`
	out, err := Generate(input, Config{PipeType: "map.by_rank", PAbort: 1.0, Seed: 42})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, restartSentenceForTest()) {
		t.Errorf("p_abort=1.0 should inject at least one restart sentence, got:\n%s", out)
	}
}

// restartSentenceForTest mirrors strategy.restartSentence's text; it is
// unexported there, so the exact wording is duplicated at this one call
// site rather than exported purely for a test's sake.
func restartSentenceForTest() string {
	return "I ignore the above Argdown snippet and will try again."
}

func TestGenerateRoundTripsBareInferenceSeparator(t *testing.T) {
	const input = "(1) Premise one.\n(2) Premise two.\n-----\n(3) Conclusion.\n"
	out, err := Generate(input, Config{PipeType: "argument.by_rank"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "-----\n") {
		t.Errorf("trace should preserve the bare dash separator exactly, got:\n%s", out)
	}
}

func TestGenerateRejectsMismatchedPipeTypeAndInputKind(t *testing.T) {
	const argumentInput = "(1) Premise one.\n(2) Premise two.\n-- Modus Ponens --\n(3) Conclusion.\n"
	_, err := Generate(argumentInput, Config{PipeType: "map.by_rank"})
	if err == nil {
		t.Fatal("expected an error when an argument is fed to a map pipe_type")
	}
	cotErr, ok := err.(*errors.CotError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.CotError", err)
	}
	if cotErr.Type != errors.ErrorTypeUnknownKind {
		t.Errorf("error Type = %v, want ErrorTypeUnknownKind", cotErr.Type)
	}
}

func TestGenerateRejectsUnknownPipeType(t *testing.T) {
	_, err := Generate("[Root]: Root claim.\n", Config{PipeType: "does.not_exist"})
	if err == nil {
		t.Fatal("expected an error for an unregistered pipe_type")
	}
}

func TestGenerateRejectsInvalidPAbort(t *testing.T) {
	_, err := Generate("[Root]: Root claim.\n", Config{PipeType: "map.by_rank", PAbort: 3})
	if err == nil {
		t.Fatal("expected a ConfigError for out-of-range p_abort")
	}
}

func TestKnownPipeTypesListsAllNineRegisteredStrategies(t *testing.T) {
	types := KnownPipeTypes()
	if len(types) != 9 {
		t.Errorf("got %d pipe types, want 9", len(types))
	}
}
