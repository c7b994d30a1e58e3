package lexer

import "testing"

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"blank", "   ", KindBlank},
		{"line comment", "// a note", KindComment},
		{"block comment", "/* a note */", KindComment},
		{"root claim", "[Root]: This is the root.", KindRootClaim},
		{"claim ref", "[Root]", KindClaimRef},
		{"argument named", "<Arg>: Some text.", KindArgumentRef},
		{"argument ref", "<Arg>", KindArgumentRef},
		{"support edge", "<+ [Child]: text.", KindSupportEdge},
		{"attack edge", "<- [Child]: text.", KindAttackEdge},
		{"undercut edge", "<_ [Child]: text.", KindUndercutEdge},
		{"premise", "(1) A premise.", KindPremise},
		{"named inference", "-- Modus Ponens --", KindInferenceSeparator},
		{"bare inference", "-----", KindInferenceSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := classify(tt.input)
			if line.Kind != tt.kind {
				t.Errorf("classify(%q).Kind = %v, want %v", tt.input, line.Kind, tt.kind)
			}
		})
	}
}

func TestClassifyExtractsTrailingYAMLAndComment(t *testing.T) {
	line := classify(`(1) Claim text. {certainty: 0.9} // inline note`)
	if line.Text != "Claim text." {
		t.Errorf("Text = %q, want %q", line.Text, "Claim text.")
	}
	if line.YAML != "{certainty: 0.9}" {
		t.Errorf("YAML = %q, want %q", line.YAML, "{certainty: 0.9}")
	}
	if line.Comment != "// inline note" {
		t.Errorf("Comment = %q, want %q", line.Comment, "// inline note")
	}
}

func TestClassifyEdgeTargetIsResolved(t *testing.T) {
	line := classify("    <+ <SomeArgument>: backs this up.")
	if line.Kind != KindSupportEdge {
		t.Fatalf("Kind = %v, want KindSupportEdge", line.Kind)
	}
	if !line.IsArgument {
		t.Errorf("expected IsArgument true for an edge targeting <SomeArgument>")
	}
	if line.Label != "SomeArgument" {
		t.Errorf("Label = %q, want %q", line.Label, "SomeArgument")
	}
	if line.Text != "backs this up." {
		t.Errorf("Text = %q, want %q", line.Text, "backs this up.")
	}
}

func TestClassifyNamedInferenceExtractsYAML(t *testing.T) {
	line := classify("-- Modus Ponens {uses: [1, 2]} --")
	if line.Kind != KindInferenceSeparator {
		t.Fatalf("Kind = %v, want KindInferenceSeparator", line.Kind)
	}
	if line.InfoText != "Modus Ponens" {
		t.Errorf("InfoText = %q, want %q", line.InfoText, "Modus Ponens")
	}
	if line.YAML != "{uses: [1, 2]}" {
		t.Errorf("YAML = %q, want %q", line.YAML, "{uses: [1, 2]}")
	}
}

func TestClassifyBareInferenceCapturesExactDashRun(t *testing.T) {
	line := classify("-----")
	if line.Kind != KindInferenceSeparator {
		t.Fatalf("Kind = %v, want KindInferenceSeparator", line.Kind)
	}
	if line.BareSeparator != "-----" {
		t.Errorf("BareSeparator = %q, want %q", line.BareSeparator, "-----")
	}
	if line.InfoText != "" {
		t.Errorf("InfoText = %q, want empty for a bare separator", line.InfoText)
	}

	longer := classify("----------")
	if longer.BareSeparator != "----------" {
		t.Errorf("BareSeparator = %q, want %q", longer.BareSeparator, "----------")
	}
}

func TestTokenizePreservesIndent(t *testing.T) {
	lx := New("[Root]: text.\n    <+ [Child]: more.\n")
	lines := lx.Tokenize()
	if len(lines) != 3 { // trailing blank from final \n
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0].Indent != 0 {
		t.Errorf("root Indent = %d, want 0", lines[0].Indent)
	}
	if lines[1].Indent != 4 {
		t.Errorf("child Indent = %d, want 4", lines[1].Indent)
	}
}
