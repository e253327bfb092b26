package driven

import "github.com/ericfisherdev/grocerylist/internal/domain/model"

// ListPresenter defines the driven port for the visible list of entries.
// Implementations only mirror what the core tells them; they never mutate
// entries themselves.
type ListPresenter interface {
	// RenderEntry shows entry. A row already showing the same ID is replaced
	// in place; otherwise the row is appended.
	RenderEntry(entry model.Entry)
	// RemoveEntry drops the row for id. No-op if no such row is shown.
	RemoveEntry(id string)
	// SetContainerVisible toggles the list container.
	SetContainerVisible(visible bool)
	// Reset drops every row.
	Reset()
}
