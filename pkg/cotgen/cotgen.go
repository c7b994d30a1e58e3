package cotgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/debatelab/argdown-cotgen/pkg/errors"
	"github.com/debatelab/argdown-cotgen/pkg/parser"
	"github.com/debatelab/argdown-cotgen/pkg/strategy"
)

// Config is the programmatic entry point's single configuration record
// (spec §6).
type Config struct {
	PipeType     string
	PAbort       float64
	Seed         uint64
	AbortionPool []string
}

func (c Config) toStrategyConfig() strategy.Config {
	return strategy.Config{PAbort: c.PAbort, Seed: c.Seed, AbortionPool: c.AbortionPool}
}

// Generate runs the full pipeline: parse, reconstruct, format (spec §4.H).
func Generate(text string, cfg Config) (string, error) {
	entry, ok := registry[cfg.PipeType]
	if !ok {
		return "", errors.ConfigError(fmt.Sprintf("unknown pipe_type %q", cfg.PipeType))
	}
	if err := cfg.toStrategyConfig().Validate(); err != nil {
		return "", err
	}

	parsed, err := parser.Parse(text)
	if err != nil {
		return "", err
	}
	if parsed.Kind != entry.kind {
		return "", errors.UnknownKind(fmt.Sprintf(
			"pipe_type %q requires a %s but the input parsed as a %s", cfg.PipeType, entry.kind, parsed.Kind))
	}

	var steps []strategy.Step
	switch entry.kind {
	case parser.KindMap:
		steps, err = entry.mapNew().Generate(parsed.Map, cfg.toStrategyConfig())
	case parser.KindArgument:
		steps, err = entry.argNew().Generate(parsed.Argument, cfg.toStrategyConfig())
	}
	if err != nil {
		return "", err
	}
	if len(steps) == 0 {
		return "", errors.StrategyError("strategy produced no steps")
	}

	if err := checkRoundTrip(text, steps[len(steps)-1].Content); err != nil {
		return "", err
	}

	attempts := strategy.ApplyAbortion(steps, cfg.toStrategyConfig())
	return FormatTrace(steps, attempts), nil
}

var runOfBlankLines = regexp.MustCompile(`\n{3,}`)

// normalizeBlankLines applies spec §3 invariant 4's documented
// normalization: runs of blank lines collapse to one, and trailing
// whitespace on every line is insignificant.
func normalizeBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	s = strings.Join(lines, "\n")
	s = runOfBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimRight(s, "\n")
}

func checkRoundTrip(original, final string) error {
	if normalizeBlankLines(original) != normalizeBlankLines(final) {
		return errors.StrategyError("final step does not reconstruct the original input")
	}
	return nil
}
