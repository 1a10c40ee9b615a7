// Package view projects a note forest and the session state into a display
// tree, and defines the sinks that display it.
package view

import (
	"github.com/rcliao/subnotes/internal/model"
	"github.com/rcliao/subnotes/internal/session"
)

// Control labels attached to every rendered note.
const (
	ControlAddNote = "ADD NOTE"
	ControlDelete  = "DELETE"
)

// Node mirrors one note. Editing nodes are shown as a text field pre-filled
// with Text; Selected nodes are the add-child target.
type Node struct {
	ID       model.ID `json:"id"`
	Text     string   `json:"text"`
	Editing  bool     `json:"editing,omitempty"`
	Selected bool     `json:"selected,omitempty"`
	Controls []string `json:"controls"`
	Children []*Node  `json:"children,omitempty"`
}

// View is a full replacement for whatever a sink currently shows. Query is
// set when the view lists search hits instead of the whole forest.
type View struct {
	Nodes []*Node `json:"nodes"`
	Query string  `json:"query,omitempty"`
}

// Filtered reports whether the view shows search hits.
func (v View) Filtered() bool { return v.Query != "" }

// Editing returns the node in edit mode, or nil.
func (v View) Editing() *Node {
	var found *Node
	v.Walk(func(n *Node, _ int) bool {
		if n.Editing {
			found = n
			return false
		}
		return true
	})
	return found
}

// Walk visits nodes in pre-order; depth starts at 0.
func (v View) Walk(fn func(n *Node, depth int) bool) {
	walk(v.Nodes, 0, fn)
}

func walk(nodes []*Node, depth int, fn func(*Node, int) bool) bool {
	for _, n := range nodes {
		if !fn(n, depth) || !walk(n.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Build projects forest 1:1. It never modifies forest.
func Build(forest model.Forest, st session.State) View {
	return View{Nodes: buildNodes(forest, st)}
}

func buildNodes(level []*model.Note, st session.State) []*Node {
	nodes := make([]*Node, 0, len(level))
	for _, n := range level {
		nodes = append(nodes, &Node{
			ID:       n.ID,
			Text:     n.Text,
			Editing:  st.IsEditing(n.ID),
			Selected: st.IsTarget(n.ID),
			Controls: []string{ControlAddNote, ControlDelete},
			Children: buildNodes(n.ChildNotes, st),
		})
	}
	return nodes
}

// BuildHits projects search hits as a flat list of leaf nodes.
func BuildHits(query string, hits []model.SearchHit, st session.State) View {
	forest := make(model.Forest, 0, len(hits))
	for _, h := range hits {
		forest = append(forest, &model.Note{ID: h.ID, Text: h.Text})
	}
	v := Build(forest, st)
	v.Query = query
	return v
}
