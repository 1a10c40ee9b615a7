// Package model defines the core note tree data types.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Text length bounds applied when a note is created. Edits are not checked.
const (
	MinTextLen = 4
	MaxTextLen = 20
)

// ID identifies a note. It is always a string; the empty ID means "none".
//
// Snapshots written with numeric ids decode to the same value as their
// string form, so 1 and "1" both become ID("1").
type ID string

// None is the absent identifier.
const None ID = ""

// IsNone reports whether id is the absent identifier.
func (id ID) IsNone() bool { return id == None }

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = None
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid note id %s: %w", b, err)
	}
	// 1, 1.0 and 1e0 all name the note the counter issued as "1".
	if i, err := n.Int64(); err == nil {
		*id = ID(strconv.FormatInt(i, 10))
		return nil
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		*id = ID(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}

// Note is a single entry in the tree.
type Note struct {
	ID         ID      `json:"id"`
	Text       string  `json:"text"`
	ChildNotes []*Note `json:"childNotes,omitempty"`
}

// IsLeaf reports whether the note has no children.
func (n *Note) IsLeaf() bool { return len(n.ChildNotes) == 0 }

// Clone returns a deep copy of the note and its subtree.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	c := &Note{ID: n.ID, Text: n.Text}
	if len(n.ChildNotes) > 0 {
		c.ChildNotes = make([]*Note, len(n.ChildNotes))
		for i, child := range n.ChildNotes {
			c.ChildNotes[i] = child.Clone()
		}
	}
	return c
}

// Forest is the ordered sequence of top-level notes.
type Forest []*Note

// Clone returns a deep copy of the forest. The result is never nil.
func (f Forest) Clone() Forest {
	out := make(Forest, len(f))
	for i, n := range f {
		out[i] = n.Clone()
	}
	return out
}

// SearchHit is the lightweight record produced by a tree search.
type SearchHit struct {
	ID   ID     `json:"id"`
	Text string `json:"text"`
}

// ValidateText reports whether text may be used to create a note: its
// trimmed length, counted in runes, must be within [MinTextLen, MaxTextLen].
func ValidateText(text string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	return n >= MinTextLen && n <= MaxTextLen
}
