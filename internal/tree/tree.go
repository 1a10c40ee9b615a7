// Package tree implements the recursive operations over a note forest.
//
// Lookups check every node of the current level before descending into the
// children of each node in order. Insert and edit stop the whole traversal at
// the first match. Delete stops descending in a branch once it removes a node
// at that level, but otherwise keeps descending into every sibling's subtree.
package tree

import (
	"errors"
	"fmt"

	"github.com/rcliao/subnotes/internal/model"
)

var (
	ErrDuplicateID = errors.New("duplicate note id")
	ErrEmptyID     = errors.New("empty note id")
)

// InsertChild appends note under the node identified by parentID. A none
// parentID appends to the top level. A missing parent leaves the forest
// untouched and returns false.
func InsertChild(forest *model.Forest, parentID model.ID, note *model.Note) bool {
	if parentID.IsNone() {
		*forest = append(*forest, note)
		return true
	}
	parent := Find(*forest, parentID)
	if parent == nil {
		return false
	}
	parent.ChildNotes = append(parent.ChildNotes, note)
	return true
}

// Delete removes the node with the given id together with its subtree.
func Delete(forest *model.Forest, id model.ID) bool {
	level := []*model.Note(*forest)
	removed := deleteFrom(&level, id)
	*forest = level
	return removed
}

func deleteFrom(level *[]*model.Note, id model.ID) bool {
	for i, n := range *level {
		if n.ID == id {
			*level = append((*level)[:i:i], (*level)[i+1:]...)
			return true
		}
	}
	removed := false
	for _, n := range *level {
		if n.IsLeaf() {
			continue
		}
		if deleteFrom(&n.ChildNotes, id) {
			removed = true
		}
		if len(n.ChildNotes) == 0 {
			n.ChildNotes = nil
		}
	}
	return removed
}

// EditText overwrites the text of the first node with the given id.
func EditText(forest model.Forest, id model.ID, text string) bool {
	n := Find(forest, id)
	if n == nil {
		return false
	}
	n.Text = text
	return true
}

// Find returns the node with the given id, or nil. A match on the current
// level wins over matches nested under it or its siblings.
func Find(forest model.Forest, id model.ID) *model.Note {
	for _, n := range forest {
		if n.ID == id {
			return n
		}
	}
	for _, n := range forest {
		if n.IsLeaf() {
			continue
		}
		if found := Find(n.ChildNotes, id); found != nil {
			return found
		}
	}
	return nil
}

// Search returns every note whose text equals query exactly, in pre-order.
func Search(forest model.Forest, query string) []model.SearchHit {
	hits := []model.SearchHit{}
	Walk(forest, func(n *model.Note, _ int) bool {
		if n.Text == query {
			hits = append(hits, model.SearchHit{ID: n.ID, Text: n.Text})
		}
		return true
	})
	return hits
}

// Walk visits every node in pre-order with its depth (top level is 1).
// Returning false from fn stops the traversal.
func Walk(forest model.Forest, fn func(n *model.Note, depth int) bool) {
	walk(forest, 1, fn)
}

func walk(level []*model.Note, depth int, fn func(*model.Note, int) bool) bool {
	for _, n := range level {
		if !fn(n, depth) {
			return false
		}
		if !walk(n.ChildNotes, depth+1, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of notes in the forest.
func Count(forest model.Forest) int {
	total := 0
	Walk(forest, func(*model.Note, int) bool {
		total++
		return true
	})
	return total
}

// Depth returns the deepest nesting level in the forest, 0 when empty.
func Depth(forest model.Forest) int {
	max := 0
	Walk(forest, func(_ *model.Note, d int) bool {
		if d > max {
			max = d
		}
		return true
	})
	return max
}

// IDs lists every id in pre-order.
func IDs(forest model.Forest) []model.ID {
	var ids []model.ID
	Walk(forest, func(n *model.Note, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// Validate checks that every id is present and unique.
func Validate(forest model.Forest) error {
	seen := make(map[model.ID]bool)
	var err error
	Walk(forest, func(n *model.Note, _ int) bool {
		if n.ID.IsNone() {
			err = fmt.Errorf("%w: note %q", ErrEmptyID, n.Text)
			return false
		}
		if seen[n.ID] {
			err = fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
			return false
		}
		seen[n.ID] = true
		return true
	})
	return err
}
