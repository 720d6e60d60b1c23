package store

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// MemoryBackend keeps records in process memory. Nothing survives a
// restart; it backs tests and the "memory" storage setting.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		records: make(map[string][]byte),
	}
}

// LoadAll returns copies of every stored record
func (b *MemoryBackend) LoadAll(_ context.Context) (map[string][]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string][]byte, len(b.records))
	for id, data := range b.records {
		out[id] = append([]byte(nil), data...)
	}
	return out, nil
}

// Put stores a copy of data
func (b *MemoryBackend) Put(_ context.Context, id string, data []byte) error {
	if id == "" {
		return errors.InvalidArgument("record ID is required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.records[id] = append([]byte(nil), data...)
	return nil
}
