package parser

import (
	"github.com/debatelab/argdown-cotgen/pkg/errors"
	"github.com/debatelab/argdown-cotgen/pkg/lexer"
	"github.com/debatelab/argdown-cotgen/pkg/node"
)

// ParseArgument implements the argument branch of spec §4.B: a
// left-to-right scan producing statements, with inference separators
// closing the current premise set and conclusion roles assigned
// heuristically in a second pass over the fully-scanned statement list.
func ParseArgument(lines []lexer.Line) (*node.ArgumentDoc, error) {
	doc := &node.ArgumentDoc{}

	var pendingAbove []string
	var pendingInference *node.Inference
	justSawSeparator := false
	sawAnySeparator := false

	attach := func(c *node.Comments) {
		for _, txt := range pendingAbove {
			c.Add(node.CommentPositionAbove, txt)
		}
		pendingAbove = nil
	}

	for i, ln := range lines {
		switch ln.Kind {
		case lexer.KindBlank:
			continue

		case lexer.KindComment:
			pendingAbove = append(pendingAbove, ln.Comment)
			continue

		case lexer.KindInferenceSeparator:
			inf := &node.Inference{RuleText: ln.InfoText, BareSeparator: ln.BareSeparator}
			if ln.YAML != "" {
				data, err := node.ParseYAMLData(ln.YAML)
				if err != nil {
					return nil, errors.ParseError(i+1, err.Error())
				}
				inf.YAML = data
			}
			attach(&inf.Comments)
			pendingInference = inf
			justSawSeparator = true
			sawAnySeparator = true
			continue

		case lexer.KindPremise:
			role := node.RolePremise
			var inf *node.Inference
			if justSawSeparator {
				role = node.RoleFinalConclusion // provisional; fixed up below
				inf = pendingInference
			}
			pendingInference = nil
			justSawSeparator = false

			stmt := &node.Statement{
				Number:    ln.Number,
				Role:      role,
				Label:     ln.Label,
				Text:      ln.Text,
				Inference: inf,
			}
			attach(&stmt.Comments)
			if ln.Comment != "" {
				stmt.Comments.Add(node.CommentPositionInline, ln.Comment)
			}
			if ln.YAML != "" {
				data, err := node.ParseYAMLData(ln.YAML)
				if err != nil {
					return nil, errors.ParseError(i+1, err.Error())
				}
				stmt.YAML = data
			}
			doc.Statements = append(doc.Statements, stmt)

		default:
			if len(doc.Statements) == 0 && !sawAnySeparator && doc.TitleGist == "" && ln.Text != "" {
				doc.TitleGist = ln.Text
				attach(&doc.TitleGistComments)
			}
		}
	}

	if len(doc.Statements) == 0 {
		return nil, errors.ParseError(len(lines), "argument has no premise or conclusion statements")
	}

	resolveConclusionRoles(doc)
	return doc, nil
}

// resolveConclusionRoles applies spec §4.B's conclusion-detection
// heuristic: the last statement and every statement immediately after a
// separator are provisionally "conclusions"; a conclusion referenced by a
// later inference's `from:` list is really an intermediate result feeding
// that later inference, so it gets retagged. Absent any `from:` data at
// all, only the document's last statement stays final.
func resolveConclusionRoles(doc *node.ArgumentDoc) {
	last := doc.Statements[len(doc.Statements)-1]

	var usedAsFrom = make(map[int]bool)
	haveFromData := false
	for _, s := range doc.Statements {
		if s.Inference == nil || s.Inference.YAML == nil {
			continue
		}
		from := s.Inference.YAML.IntSliceField("from")
		if from != nil {
			haveFromData = true
			for _, n := range from {
				usedAsFrom[n] = true
			}
		}
	}

	for _, s := range doc.Statements {
		if s.Role != node.RoleFinalConclusion {
			continue
		}
		switch {
		case s == last:
			s.Role = node.RoleFinalConclusion
		case haveFromData:
			if usedAsFrom[s.Number] {
				s.Role = node.RoleIntermediateConclusion
			} else {
				s.Role = node.RoleFinalConclusion
			}
		default:
			s.Role = node.RoleIntermediateConclusion
		}
	}
}
