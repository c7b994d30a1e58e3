package cotgen

import (
	"fmt"
	"strings"

	"github.com/debatelab/argdown-cotgen/pkg/strategy"
)

const (
	preamble = "Let me build the Argdown code snippet step by step."
)

// FormatTrace wraps a strategy's steps into the final CoT text (spec
// §4.G): a fixed preamble, then each step's fenced block and
// explanation in order (with an aborted draft rendered just ahead of
// any step the abortion hook fired on), then a closing sentence naming
// the final version.
func FormatTrace(steps []strategy.Step, attempts []*strategy.AbortedAttempt) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n")

	for i, s := range steps {
		if i < len(attempts) && attempts[i] != nil {
			writeFence(&b, s.Version, attempts[i].Content)
			b.WriteString(attempts[i].RestartSentence)
			b.WriteString("\n\n")
		}
		writeFence(&b, s.Version, s.Content)
		b.WriteString(s.Explanation)
		b.WriteString("\n\n")
	}

	last := steps[len(steps)-1]
	fmt.Fprintf(&b, "I've created the Argdown code snippet and may submit version='%s'.\n", last.Version)

	return b.String()
}

func writeFence(b *strings.Builder, version, content string) {
	fmt.Fprintf(b, "```argdown {version='%s'}\n", version)
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString("```\n\n")
}
