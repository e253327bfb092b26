package application

import "errors"

// Sentinel errors returned by EntryStore and surfaced through ListService results.
var (
	// ErrEmptyInput indicates a submission with no text.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoChange indicates an edit whose value equals the current value.
	// It is an outcome, not a failure: nothing was written.
	ErrNoChange = errors.New("no change")

	// ErrNotFound indicates the referenced entry is not in the list.
	ErrNotFound = errors.New("entry not found")

	// ErrPersistence indicates the record store rejected a read or write.
	// The in-memory list is not rolled back when a write fails.
	ErrPersistence = errors.New("persistence failure")
)
