// Package memory implements driven ports with process-local state. Records
// do not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of the RecordStore port.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewRecordStore creates an empty RecordStore.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[string][]byte)}
}

// Get returns a copy of the value under key, or (nil, nil) if absent.
func (s *RecordStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value under key.
func (s *RecordStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key. No-op if absent.
func (s *RecordStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}
