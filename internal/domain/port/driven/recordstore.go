// Package driven defines secondary port interfaces for external adapters.
package driven

import "context"

// RecordStore defines the driven port for the durable key-value medium that
// holds serialized records. Each key maps to one opaque value which is
// replaced wholesale on every Put.
type RecordStore interface {
	// Get returns the value stored under key. Returns (nil, nil) if no record
	// exists for that key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes the record under key. No-op if the key is absent.
	Delete(ctx context.Context, key string) error
}
