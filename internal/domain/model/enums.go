package model

// EditMode is the state of the item form: creating a new entry or editing an
// existing one.
type EditMode string

const (
	EditModeCreating EditMode = "creating"
	EditModeEditing  EditMode = "editing"
)

// NoticeKind classifies a user-facing notification.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeDanger  NoticeKind = "danger"
)

// Outcome is the discriminated result of a single list command.
type Outcome string

const (
	OutcomeCreated     Outcome = "created"
	OutcomeUpdated     Outcome = "updated"
	OutcomeNoChange    Outcome = "no_change"
	OutcomeEmptyInput  Outcome = "empty_input"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeRemoved     Outcome = "removed"
	OutcomeCleared     Outcome = "cleared"
	OutcomeEditStarted Outcome = "edit_started"
	OutcomeFailed      Outcome = "failed"
)
