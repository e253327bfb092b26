package web

import (
	"slices"
	"sync"

	"github.com/ericfisherdev/grocerylist/internal/domain/model"
	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ListPresenter = (*ListView)(nil)

// ListView is the presenter behind the GUI. The core pushes row changes into
// it; page renders read a snapshot. It is safe for concurrent use.
type ListView struct {
	mu      sync.RWMutex
	rows    []model.Entry
	visible bool
}

// NewListView creates an empty, hidden ListView.
func NewListView() *ListView {
	return &ListView{}
}

// RenderEntry appends entry, or replaces the row with the same ID in place.
func (v *ListView) RenderEntry(entry model.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if i := v.indexOf(entry.ID); i >= 0 {
		v.rows[i] = entry
		return
	}
	v.rows = append(v.rows, entry)
}

// RemoveEntry drops the row for id.
func (v *ListView) RemoveEntry(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if i := v.indexOf(id); i >= 0 {
		v.rows = slices.Delete(v.rows, i, i+1)
	}
}

// SetContainerVisible toggles the list container.
func (v *ListView) SetContainerVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = visible
}

// Reset drops every row.
func (v *ListView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = nil
}

// Snapshot returns a copy of the rows and the container visibility.
func (v *ListView) Snapshot() ([]model.Entry, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.rows), v.visible
}

func (v *ListView) indexOf(id string) int {
	return slices.IndexFunc(v.rows, func(e model.Entry) bool { return e.ID == id })
}
