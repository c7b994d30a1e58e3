// Package view defines the read-only selections strategies emit over a
// parsed tree (spec §3 "Lifecycle", §9 "View objects vs mutation"):
// strategies never mutate the tree between steps, they only narrow or
// widen which nodes and attachments a given step renders.
package view

import "github.com/debatelab/argdown-cotgen/pkg/node"

// MapView selects which nodes of a MapTree are visible in one step, and
// which per-node attachments are currently shown.
type MapView struct {
	// Visible holds every node id that should be rendered.
	Visible map[node.ID]bool
	// ShowYAML and ShowComments gate a visible node's attached YAML data
	// and comments; both are normally false until the final view.
	ShowYAML     bool
	ShowComments bool
	// Placeholders maps a visible node's id to a synthetic comment line
	// the serializer should render as that node's last child, because
	// this view elides children that a later view will add.
	Placeholders map[node.ID]string
	// Orphans maps a visible node's id to a marker text (e.g. "??") used
	// by depth_diffusion: the node renders as a flat, unnested entry
	// with that marker instead of its true edge, because this view has
	// not yet reached the node's true depth.
	Orphans map[node.ID]string
	// EdgeOverride maps a visible node's id to an edge type to display
	// in place of its true EdgeToParent, used by random_diffusion to
	// show a not-yet-corrected polarity.
	EdgeOverride map[node.ID]node.EdgeType
}

// NewMapView creates an empty view.
func NewMapView() *MapView {
	return &MapView{
		Visible:      map[node.ID]bool{},
		Placeholders: map[node.ID]string{},
		Orphans:      map[node.ID]string{},
		EdgeOverride: map[node.ID]node.EdgeType{},
	}
}

// Clone makes an independent copy so a strategy can build each view by
// widening the previous one without aliasing its maps.
func (v *MapView) Clone() *MapView {
	c := NewMapView()
	for id := range v.Visible {
		c.Visible[id] = true
	}
	for id, p := range v.Placeholders {
		c.Placeholders[id] = p
	}
	if v.Orphans != nil {
		c.Orphans = make(map[node.ID]string, len(v.Orphans))
		for id, m := range v.Orphans {
			c.Orphans[id] = m
		}
	}
	if v.EdgeOverride != nil {
		c.EdgeOverride = make(map[node.ID]node.EdgeType, len(v.EdgeOverride))
		for id, e := range v.EdgeOverride {
			c.EdgeOverride[id] = e
		}
	}
	c.ShowYAML = v.ShowYAML
	c.ShowComments = v.ShowComments
	return c
}

// Show marks a node as visible.
func (v *MapView) Show(id node.ID) { v.Visible[id] = true }

// Has reports whether a node is visible in this view.
func (v *MapView) Has(id node.ID) bool { return v.Visible[id] }

// ArgView selects which statements of an ArgumentDoc are visible in one
// step, and which attachments are shown. Statement numbers are
// recomputed by the serializer from the visible subset rather than
// stored here (design notes §9).
type ArgView struct {
	ShowTitleGist bool
	// VisibleNumbers holds the original statement Numbers to render, in
	// whatever order the strategy wants them laid out.
	VisibleNumbers []int
	// PendingAfter maps a visible statement's number to the number of
	// "(??)" placeholder premise lines to render immediately after it,
	// for a premise region that has not been expanded yet.
	PendingAfter map[int]int
	ShowInference bool
	ShowYAML      bool
	ShowComments  bool
}

// NewArgView creates an empty view.
func NewArgView() *ArgView {
	return &ArgView{PendingAfter: map[int]int{}}
}

// Clone makes an independent copy.
func (v *ArgView) Clone() *ArgView {
	c := NewArgView()
	c.ShowTitleGist = v.ShowTitleGist
	c.VisibleNumbers = append([]int(nil), v.VisibleNumbers...)
	for k, n := range v.PendingAfter {
		c.PendingAfter[k] = n
	}
	c.ShowInference = v.ShowInference
	c.ShowYAML = v.ShowYAML
	c.ShowComments = v.ShowComments
	return c
}
