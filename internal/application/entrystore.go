package application

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/ericfisherdev/grocerylist/internal/domain/model"
)

// EntryStore is the in-memory, insertion-ordered entry collection. Every
// mutation is written through to the persistence adapter exactly once before
// it returns. EntryStore is not safe for concurrent use; ListService
// serializes access to it.
type EntryStore struct {
	entries []model.Entry
	persist *EntryPersistence
	newID   func() string
}

// NewEntryStore creates an empty EntryStore writing through to persist.
// newID generates candidate ids; nil selects random UUIDs.
func NewEntryStore(persist *EntryPersistence, newID func() string) *EntryStore {
	if newID == nil {
		newID = uuid.NewString
	}
	return &EntryStore{
		persist: persist,
		newID:   newID,
	}
}

// Load replaces the in-memory collection with the persisted one.
func (s *EntryStore) Load(ctx context.Context) error {
	entries, err := s.persist.Load(ctx)
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

// List returns a copy of the entries in insertion order.
func (s *EntryStore) List() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *EntryStore) Len() int {
	return len(s.entries)
}

// Get returns the entry with the given id.
func (s *EntryStore) Get(id string) (model.Entry, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Entry{}, false
	}
	return s.entries[i], true
}

// Create appends a new entry with a fresh id and persists the collection.
// On ErrPersistence the entry stays in memory and is still returned.
func (s *EntryStore) Create(ctx context.Context, value string) (model.Entry, error) {
	if value == "" {
		return model.Entry{}, ErrEmptyInput
	}

	entry := model.Entry{ID: s.uniqueID(), Value: value}
	s.entries = append(s.entries, entry)

	return entry, s.persist.Save(ctx, s.entries)
}

// Update replaces the value of the entry with the given id and persists the
// collection. Returns ErrNoChange without writing when newValue equals the
// current value. On ErrPersistence the new value stays in memory.
func (s *EntryStore) Update(ctx context.Context, id, newValue string) (model.Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Entry{}, ErrNotFound
	}
	if newValue == "" {
		return s.entries[i], ErrEmptyInput
	}
	if s.entries[i].Value == newValue {
		return s.entries[i], ErrNoChange
	}

	s.entries[i].Value = newValue

	return s.entries[i], s.persist.Save(ctx, s.entries)
}

// Remove deletes the entry with the given id, persists the remaining
// collection (even when empty), and returns the removed entry.
func (s *EntryStore) Remove(ctx context.Context, id string) (model.Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Entry{}, ErrNotFound
	}

	removed := s.entries[i]
	s.entries = slices.Delete(s.entries, i, i+1)

	return removed, s.persist.Save(ctx, s.entries)
}

// Clear empties the collection and deletes the persisted record.
func (s *EntryStore) Clear(ctx context.Context) error {
	s.entries = nil
	return s.persist.Clear(ctx)
}

func (s *EntryStore) indexOf(id string) int {
	return slices.IndexFunc(s.entries, func(e model.Entry) bool { return e.ID == id })
}

// uniqueID draws ids until one is not already in use.
func (s *EntryStore) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}
