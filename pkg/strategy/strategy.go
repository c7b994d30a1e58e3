// Package strategy defines the shared contract and mechanics every
// incremental reconstruction strategy builds on (spec §4.D): a strategy
// turns a parsed tree into an ordered list of Steps, each a rendered
// Argdown snippet plus a short explanation, without ever mutating the
// tree it was handed.
package strategy

import (
	"github.com/debatelab/argdown-cotgen/pkg/errors"
	"github.com/debatelab/argdown-cotgen/pkg/node"
)

// Step is one versioned stage of a reconstruction trace.
type Step struct {
	Version     string
	Content     string
	Explanation string
}

// Config parameterizes a single generation run (spec §6).
type Config struct {
	PAbort float64
	// Seed drives the abortion hook's pseudorandom choices. Two runs with
	// the same Seed and the same Steps-before-abortion produce identical
	// output (spec §5, §8 property 4).
	Seed uint64
	// AbortionPool supplies the candidate "abort" comment sentences; a
	// nil/empty pool falls back to DefaultAbortionPool.
	AbortionPool []string
}

// Validate checks the out-of-range conditions spec §7 assigns to ConfigError.
func (c Config) Validate() error {
	if c.PAbort < 0 || c.PAbort > 1 {
		return errors.ConfigError("p_abort must be within [0, 1]")
	}
	return nil
}

// MapStrategy produces the reconstruction trace for an ArgumentMap.
type MapStrategy interface {
	Name() string
	Generate(tree *node.MapTree, cfg Config) ([]Step, error)
}

// ArgStrategy produces the reconstruction trace for an ArgumentDoc.
type ArgStrategy interface {
	Name() string
	Generate(doc *node.ArgumentDoc, cfg Config) ([]Step, error)
}

// phrasePool cycles deterministically through a fixed phrase table so
// that repeated stages reuse phrasing without ever repeating the same
// phrase twice in a row when more than one option exists (design notes
// §9: "centralize phrasing templates ... so tests can assert coverage").
type phrasePool struct {
	phrases []string
	next    int
}

func newPhrasePool(phrases []string) *phrasePool {
	return &phrasePool{phrases: phrases}
}

func (p *phrasePool) take() string {
	if len(p.phrases) == 0 {
		return ""
	}
	s := p.phrases[p.next%len(p.phrases)]
	p.next++
	return s
}
