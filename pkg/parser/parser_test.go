package parser

import (
	"strings"
	"testing"

	"github.com/debatelab/argdown-cotgen/pkg/lexer"
	"github.com/debatelab/argdown-cotgen/pkg/node"
)

func tokenize(t *testing.T, input string) []lexer.Line {
	t.Helper()
	return lexer.New(input).Tokenize()
}

func TestDetectKindMap(t *testing.T) {
	kind := DetectKind(tokenize(t, "[Root]: Root claim.\n    <+ [Reason]: A reason.\n"))
	if kind != KindMap {
		t.Errorf("DetectKind = %v, want KindMap", kind)
	}
}

func TestDetectKindArgument(t *testing.T) {
	kind := DetectKind(tokenize(t, "(1) Premise one.\n(2) Premise two.\n-- Modus Ponens --\n(3) Conclusion.\n"))
	if kind != KindArgument {
		t.Errorf("DetectKind = %v, want KindArgument", kind)
	}
}

func TestDetectKindUnknown(t *testing.T) {
	kind := DetectKind(tokenize(t, "just some prose\nwith no structure\n"))
	if kind != KindUnknown {
		t.Errorf("DetectKind = %v, want KindUnknown", kind)
	}
}

func TestParseMapBuildsNestedTree(t *testing.T) {
	input := `[Root]: Root claim.
    <+ [Support]: A supporting claim.
    <- <Objection>: An objection.
`
	parsed, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Kind != KindMap {
		t.Fatalf("Kind = %v, want KindMap", parsed.Kind)
	}
	if len(parsed.Map.Roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(parsed.Map.Roots))
	}
	root := parsed.Map.Roots[0]
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}
	if root.Children[0].EdgeToParent != node.EdgeSupport {
		t.Errorf("first child edge = %v, want EdgeSupport", root.Children[0].EdgeToParent)
	}
	if root.Children[1].EdgeToParent != node.EdgeAttack {
		t.Errorf("second child edge = %v, want EdgeAttack", root.Children[1].EdgeToParent)
	}
	if root.Children[1].Kind != node.KindArgument {
		t.Errorf("objection Kind = %v, want KindArgument", root.Children[1].Kind)
	}
}

func TestParseMapRejectsRootAtNonZeroIndent(t *testing.T) {
	_, err := Parse("    [Root]: indented root.\n")
	if err == nil {
		t.Fatal("expected a ParseError for a root claim at non-zero indent")
	}
}

func TestParseArgumentAssignsFinalConclusion(t *testing.T) {
	input := `(1) All humans are mortal.
(2) Socrates is a human.
-- Modus Ponens --
(3) Socrates is mortal.
`
	parsed, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	final := parsed.Argument.FinalConclusion()
	if final == nil {
		t.Fatal("expected a final conclusion")
	}
	if !strings.Contains(final.Text, "Socrates is mortal") {
		t.Errorf("final conclusion text = %q", final.Text)
	}
	if len(parsed.Argument.Premises()) != 2 {
		t.Errorf("got %d premises, want 2", len(parsed.Argument.Premises()))
	}
}

func TestParseArgumentRetagsEarlierConclusionAsIntermediateWithoutFromData(t *testing.T) {
	input := `(1) Premise A.
(2) Premise B.
-- Sub-inference {uses: [1, 2]} --
(3) Intermediate conclusion.
(4) Premise C.
-- Main inference {uses: [3, 4]} --
(5) Final conclusion.
`
	parsed, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	byNumber := make(map[int]*node.Statement)
	for _, s := range parsed.Argument.Statements {
		byNumber[s.Number] = s
	}
	if byNumber[3].Role != node.RoleIntermediateConclusion {
		t.Errorf("statement 3 Role = %v, want RoleIntermediateConclusion", byNumber[3].Role)
	}
	if byNumber[5].Role != node.RoleFinalConclusion {
		t.Errorf("statement 5 Role = %v, want RoleFinalConclusion", byNumber[5].Role)
	}
}
