package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/grocerylist/internal/domain/model"
	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

// DefaultStorageKey is the record key the list is stored under.
const DefaultStorageKey = "grocery_list"

// EntryPersistence serializes the whole entry collection as one JSON record
// under a single key. It has no knowledge of edit state or presentation.
type EntryPersistence struct {
	records driven.RecordStore
	key     string
	logger  *slog.Logger
}

// NewEntryPersistence creates an EntryPersistence writing to records under key.
// An empty key falls back to DefaultStorageKey.
func NewEntryPersistence(records driven.RecordStore, key string, logger *slog.Logger) *EntryPersistence {
	if key == "" {
		key = DefaultStorageKey
	}
	return &EntryPersistence{
		records: records,
		key:     key,
		logger:  logger,
	}
}

// Key returns the record key used by this adapter.
func (p *EntryPersistence) Key() string {
	return p.key
}

// Save overwrites the stored record with entries. A nil slice is stored as
// an empty JSON array. Store failures are wrapped with ErrPersistence.
func (p *EntryPersistence) Save(ctx context.Context, entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrPersistence, p.key, err)
	}

	if err := p.records.Put(ctx, p.key, data); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrPersistence, p.key, err)
	}

	return nil
}

// Load returns the stored collection in saved order. A missing record or one
// that fails to parse yields an empty list; only store read failures are
// returned as errors.
func (p *EntryPersistence) Load(ctx context.Context) ([]model.Entry, error) {
	data, err := p.records.Get(ctx, p.key)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrPersistence, p.key, err)
	}
	if len(data) == 0 {
		return []model.Entry{}, nil
	}

	var stored []model.Entry
	if err := json.Unmarshal(data, &stored); err != nil {
		p.logger.Warn("stored list is unreadable, starting empty", "key", p.key, "error", err)
		return []model.Entry{}, nil
	}

	// Drop rows that would break id uniqueness; first occurrence wins.
	entries := make([]model.Entry, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))
	for _, e := range stored {
		if e.ID == "" || e.Value == "" {
			p.logger.Warn("skipping incomplete stored entry", "key", p.key, "id", e.ID)
			continue
		}
		if _, dup := seen[e.ID]; dup {
			p.logger.Warn("skipping duplicate stored entry", "key", p.key, "id", e.ID)
			continue
		}
		seen[e.ID] = struct{}{}
		entries = append(entries, e)
	}

	return entries, nil
}

// Clear deletes the stored record. A later Load returns an empty list.
func (p *EntryPersistence) Clear(ctx context.Context) error {
	if err := p.records.Delete(ctx, p.key); err != nil {
		return fmt.Errorf("%w: clear %s: %w", ErrPersistence, p.key, err)
	}
	return nil
}
