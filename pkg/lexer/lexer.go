// Package lexer classifies Argdown source text into typed line records.
//
// Classification operates per physical line, by leading-token pattern,
// rather than per rune: every rule here keeps the original raw text so
// later stages can reproduce spacing exactly.
package lexer

import (
	"regexp"
	"strings"
)

var (
	rePremiseOrConclusion = regexp.MustCompile(`^\((\d+)\)\s*(.*)$`)
	reInferenceNamed      = regexp.MustCompile(`^--\s*(.*?)\s*--\s*$`)
	reInferenceBare       = regexp.MustCompile(`^(-{5,})\s*$`)
	reRootClaim           = regexp.MustCompile(`^\[([^\]]+)\]:\s*(.*)$`)
	reClaimRef            = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*)$`)
	reArgumentNamed       = regexp.MustCompile(`^<([^>]+)>:\s*(.*)$`)
	reArgumentRef         = regexp.MustCompile(`^<([^>]+)>\s*(.*)$`)
	reSupportEdge         = regexp.MustCompile(`^<\+\s*(.*)$`)
	reAttackEdge          = regexp.MustCompile(`^<-\s*(.*)$`)
	reUndercutEdge        = regexp.MustCompile(`^<_\s*(.*)$`)
	reYAMLTrailing        = regexp.MustCompile(`\s*(\{[^{}]*\})\s*$`)
	reLineComment         = regexp.MustCompile(`//.*$`)
	reBlockComment        = regexp.MustCompile(`/\*.*?\*/`)
)

// Lexer splits Argdown source into classified Line records.
type Lexer struct {
	lines []string
}

// New creates a Lexer over the given source text.
func New(text string) *Lexer {
	// Normalize line endings but keep blank-line structure intact; the
	// strategy/serializer layer is responsible for collapsing runs of
	// blank lines, not the lexer.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &Lexer{lines: strings.Split(text, "\n")}
}

// Tokenize classifies every line of the input in order.
func (l *Lexer) Tokenize() []Line {
	out := make([]Line, 0, len(l.lines))
	for _, raw := range l.lines {
		out = append(out, classify(raw))
	}
	return out
}

func classify(raw string) Line {
	trimmed := strings.TrimLeft(raw, " ")
	indent := len(raw) - len(trimmed)
	content := strings.TrimRight(trimmed, " \t")

	line := Line{Raw: raw, Indent: indent}

	if strings.TrimSpace(content) == "" {
		line.Kind = KindBlank
		return line
	}

	if strings.HasPrefix(content, "//") {
		line.Kind = KindComment
		line.Comment = content
		return line
	}
	if m := reBlockComment.FindString(content); m != "" && strings.HasPrefix(content, "/*") {
		line.Kind = KindComment
		line.Comment = content
		return line
	}

	if m := reInferenceBare.FindStringSubmatch(content); m != nil {
		line.Kind = KindInferenceSeparator
		line.BareSeparator = m[1]
		return line
	}
	if m := reInferenceNamed.FindStringSubmatch(content); m != nil {
		line.Kind = KindInferenceSeparator
		fillPropositionFields(&line, m[1])
		line.InfoText = line.Text
		line.Text = ""
		return line
	}

	// Edges must be checked before generic argument-ref/claim-ref parsing,
	// since their leading token ("<+ ", "<- ", "<_ ") would otherwise be
	// mistaken for an argument reference. The target after the marker is
	// itself a claim or argument reference and is classified recursively.
	switch {
	case reSupportEdge.MatchString(content):
		m := reSupportEdge.FindStringSubmatch(content)
		line.Kind = KindSupportEdge
		classifyTarget(&line, m[1])
		return line
	case reAttackEdge.MatchString(content):
		m := reAttackEdge.FindStringSubmatch(content)
		line.Kind = KindAttackEdge
		classifyTarget(&line, m[1])
		return line
	case reUndercutEdge.MatchString(content):
		m := reUndercutEdge.FindStringSubmatch(content)
		line.Kind = KindUndercutEdge
		classifyTarget(&line, m[1])
		return line
	}

	if m := reRootClaim.FindStringSubmatch(content); m != nil {
		line.Kind = KindRootClaim
		line.Label = m[1]
		line.HasLabel = true
		fillPropositionFields(&line, m[2])
		return line
	}
	if m := reClaimRef.FindStringSubmatch(content); m != nil {
		line.Kind = KindClaimRef
		line.Label = m[1]
		line.HasLabel = true
		fillPropositionFields(&line, m[2])
		return line
	}
	if m := reArgumentNamed.FindStringSubmatch(content); m != nil {
		line.Kind = KindArgumentRef
		line.Label = m[1]
		line.HasLabel = true
		line.IsArgument = true
		fillPropositionFields(&line, m[2])
		return line
	}
	if m := reArgumentRef.FindStringSubmatch(content); m != nil {
		line.Kind = KindArgumentRef
		line.Label = m[1]
		line.HasLabel = true
		line.IsArgument = true
		fillPropositionFields(&line, m[2])
		return line
	}

	if m := rePremiseOrConclusion.FindStringSubmatch(content); m != nil {
		// The parser promotes premise vs. conclusion based on context
		// (§4.B); the lexer only records the number and text.
		line.Kind = KindPremise
		line.Number = atoi(m[1])
		fillPropositionFields(&line, m[2])
		return line
	}

	// Anything else is a bare proposition continuation/title-gist line;
	// treat it as a claim-ref-shaped text carrier so the parser can decide
	// its role from context.
	line.Kind = KindClaimRef
	fillPropositionFields(&line, content)
	return line
}

// classifyTarget parses an edge line's remainder (everything after the
// "<+ "/"<- "/"<_ " marker) as the claim or argument reference it targets.
func classifyTarget(line *Line, rest string) {
	rest = strings.TrimSpace(rest)
	switch {
	case reRootClaim.MatchString(rest):
		m := reRootClaim.FindStringSubmatch(rest)
		line.Label, line.HasLabel = m[1], true
		fillPropositionFields(line, m[2])
	case reArgumentNamed.MatchString(rest):
		m := reArgumentNamed.FindStringSubmatch(rest)
		line.Label, line.HasLabel, line.IsArgument = m[1], true, true
		fillPropositionFields(line, m[2])
	case reArgumentRef.MatchString(rest):
		m := reArgumentRef.FindStringSubmatch(rest)
		line.Label, line.HasLabel, line.IsArgument = m[1], true, true
		fillPropositionFields(line, m[2])
	case reClaimRef.MatchString(rest):
		m := reClaimRef.FindStringSubmatch(rest)
		line.Label, line.HasLabel = m[1], true
		fillPropositionFields(line, m[2])
	default:
		fillPropositionFields(line, rest)
	}
}

// fillPropositionFields extracts a trailing inline YAML block and/or
// trailing line comment from a proposition's text, leaving Text holding
// only the prose.
func fillPropositionFields(line *Line, rest string) {
	rest = strings.TrimSpace(rest)

	if m := reLineComment.FindStringIndex(rest); m != nil {
		line.Comment = rest[m[0]:]
		rest = strings.TrimSpace(rest[:m[0]])
	}

	if m := reYAMLTrailing.FindStringSubmatch(rest); m != nil {
		line.YAML = m[1]
		rest = strings.TrimSpace(reYAMLTrailing.ReplaceAllString(rest, ""))
	}

	line.Text = rest
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
