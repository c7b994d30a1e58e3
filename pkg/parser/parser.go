// Package parser assembles lexer output into the typed tree shapes
// defined by pkg/node: an ArgumentMap or an Argument (spec §4.B).
package parser

import (
	"github.com/debatelab/argdown-cotgen/pkg/errors"
	"github.com/debatelab/argdown-cotgen/pkg/lexer"
	"github.com/debatelab/argdown-cotgen/pkg/node"
)

// InputKind is the structural shape a document was classified as.
type InputKind int

const (
	KindUnknown InputKind = iota
	KindMap
	KindArgument
)

func (k InputKind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// DetectKind implements phase 1 of spec §4.B: classify the document as an
// ArgumentMap or an Argument from its structural signature, before any
// tree is built.
func DetectKind(lines []lexer.Line) InputKind {
	for _, l := range lines {
		switch l.Kind {
		case lexer.KindBlank, lexer.KindComment:
			continue
		case lexer.KindRootClaim:
			return KindMap
		}
		break
	}

	for _, l := range lines {
		switch l.Kind {
		case lexer.KindSupportEdge, lexer.KindAttackEdge, lexer.KindUndercutEdge:
			return KindMap
		}
	}

	for _, l := range lines {
		switch l.Kind {
		case lexer.KindPremise, lexer.KindInferenceSeparator:
			return KindArgument
		}
	}

	return KindUnknown
}

// Parsed holds the result of parsing, with only one of Map/Argument set
// depending on the detected InputKind.
type Parsed struct {
	Kind     InputKind
	Map      *node.MapTree
	Argument *node.ArgumentDoc
}

// Parse runs phase 1 (mode detection) then phase 2 (tree assembly) over
// Argdown source text.
func Parse(text string) (*Parsed, error) {
	lines := lexer.New(text).Tokenize()

	switch kind := DetectKind(lines); kind {
	case KindMap:
		tree, err := ParseMap(lines)
		if err != nil {
			return nil, err
		}
		return &Parsed{Kind: KindMap, Map: tree}, nil
	case KindArgument:
		doc, err := ParseArgument(lines)
		if err != nil {
			return nil, err
		}
		return &Parsed{Kind: KindArgument, Argument: doc}, nil
	default:
		return nil, errors.UnknownKind("cannot classify input as an argument map or an argument")
	}
}
