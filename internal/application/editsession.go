package application

import "github.com/ericfisherdev/grocerylist/internal/domain/model"

// EditSession tracks whether the item form creates a new entry or edits an
// existing one. The target id is set if and only if the mode is Editing.
type EditSession struct {
	mode     model.EditMode
	targetID string
}

// NewEditSession returns a session in the Creating mode.
func NewEditSession() *EditSession {
	return &EditSession{mode: model.EditModeCreating}
}

// BeginEdit switches to Editing with id as the target. The caller is
// responsible for id referencing an existing entry. An empty id resets.
func (s *EditSession) BeginEdit(id string) {
	if id == "" {
		s.Reset()
		return
	}
	s.mode = model.EditModeEditing
	s.targetID = id
}

// Reset returns to Creating and clears the target.
func (s *EditSession) Reset() {
	s.mode = model.EditModeCreating
	s.targetID = ""
}

// Mode returns the current mode.
func (s *EditSession) Mode() model.EditMode {
	return s.mode
}

// TargetID returns the id under edit, or "" while Creating.
func (s *EditSession) TargetID() string {
	return s.targetID
}

// Editing reports whether the session targets an existing entry.
func (s *EditSession) Editing() bool {
	return s.mode == model.EditModeEditing
}
