// Package session tracks the transient selection and edit state of a
// note tree session. Nothing here is persisted.
package session

import "github.com/rcliao/subnotes/internal/model"

// State has two independent axes: the add-child target and the note
// currently open for editing. At most one note is edited at a time.
type State struct {
	TargetParentID model.ID `json:"target_parent_id,omitempty"`
	EditingID      model.ID `json:"editing_id,omitempty"`
	EditingActive  bool     `json:"editing_active"`
}

// ToggleTarget selects id as the add-child target, or clears the target
// when id is already selected.
func (s *State) ToggleTarget(id model.ID) {
	if s.TargetParentID == id {
		s.TargetParentID = model.None
		return
	}
	s.TargetParentID = id
}

func (s *State) ClearTarget() { s.TargetParentID = model.None }

// BeginEdit puts id into edit mode, replacing any previous edit.
func (s *State) BeginEdit(id model.ID) {
	s.EditingID = id
	s.EditingActive = !id.IsNone()
}

func (s *State) EndEdit() {
	s.EditingID = model.None
	s.EditingActive = false
}

// IsEditing reports whether id is the note in edit mode. EditingID is
// ignored while EditingActive is false.
func (s State) IsEditing(id model.ID) bool {
	return s.EditingActive && !id.IsNone() && s.EditingID == id
}

func (s State) IsTarget(id model.ID) bool {
	return !id.IsNone() && s.TargetParentID == id
}

// Editing returns the id in edit mode, if any.
func (s State) Editing() (model.ID, bool) {
	if !s.EditingActive || s.EditingID.IsNone() {
		return model.None, false
	}
	return s.EditingID, true
}
