package node

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLData holds a proposition's inline flow-style YAML mapping
// (`{k1: v1, k2: v2}`), preserving literal key order.
//
// The mapping is parsed with yaml.v3 into a *yaml.Node rather than into a
// plain map, because a Go map loses key order on iteration; yaml.Node's
// Content slice keeps keys and values as an alternating, ordered list,
// which is exactly what spec §6 means by "key order preserved literally".
type YAMLData struct {
	node *yaml.Node
}

// ParseYAMLData parses a trailing `{...}` flow mapping, including the
// braces, as it was lexed.
func ParseYAMLData(raw string) (*YAMLData, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("unclosed or malformed inline YAML %q: %w", raw, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty inline YAML %q", raw)
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("inline YAML %q is not a flow mapping", raw)
	}
	return &YAMLData{node: mapping}, nil
}

// Keys returns the mapping's keys in their original, literal order.
func (y *YAMLData) Keys() []string {
	if y == nil || y.node == nil {
		return nil
	}
	keys := make([]string, 0, len(y.node.Content)/2)
	for i := 0; i+1 < len(y.node.Content); i += 2 {
		keys = append(keys, y.node.Content[i].Value)
	}
	return keys
}

// Render re-emits the mapping as a single-line flow mapping, preserving
// key order. Scalars are written as their plain values, so quotes around
// a key or value are dropped, and entries and sequence items are joined
// with ", "; input written with other quoting or spacing does not come
// back byte-for-byte.
func (y *YAMLData) Render() string {
	if y == nil || y.node == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i+1 < len(y.node.Content); i += 2 {
		if i > 0 {
			b.WriteString(", ")
		}
		key := y.node.Content[i]
		val := y.node.Content[i+1]
		fmt.Fprintf(&b, "%s: %s", key.Value, renderValue(val))
	}
	b.WriteByte('}')
	return b.String()
}

func renderValue(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value
	case yaml.SequenceNode:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderValue(item))
		}
		b.WriteByte(']')
		return b.String()
	case yaml.MappingNode:
		var b strings.Builder
		b.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", n.Content[i].Value, renderValue(n.Content[i+1]))
		}
		b.WriteByte('}')
		return b.String()
	default:
		return n.Value
	}
}

// field returns the raw value node for a key, or nil if absent.
func (y *YAMLData) field(key string) *yaml.Node {
	if y == nil || y.node == nil {
		return nil
	}
	for i := 0; i+1 < len(y.node.Content); i += 2 {
		if y.node.Content[i].Value == key {
			return y.node.Content[i+1]
		}
	}
	return nil
}

// StringField returns a scalar field's string value and whether it was present.
func (y *YAMLData) StringField(key string) (string, bool) {
	v := y.field(key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return "", false
	}
	return v.Value, true
}

// IntSliceField decodes a sequence field of integers, such as `uses:
// [1, 2]` or `from: [3]`. Missing or malformed fields decode to nil.
func (y *YAMLData) IntSliceField(key string) []int {
	v := y.field(key)
	if v == nil || v.Kind != yaml.SequenceNode {
		return nil
	}
	var out []int
	for _, item := range v.Content {
		var n int
		if err := item.Decode(&n); err == nil {
			out = append(out, n)
		}
	}
	return out
}
