// Package store provides the keyed record store shared by the profile and
// character repositories. Records live in memory and every write goes to a
// Backend before the in-memory copy changes.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

//go:generate mockgen -destination=mock/mock_backend.go -package=storemock github.com/KirkDiggler/rpg-progression/internal/repositories/store Backend

// Backend persists serialized records for one namespace
type Backend interface {
	// LoadAll returns every stored record keyed by identity. A backend with
	// nothing stored returns an empty map.
	LoadAll(ctx context.Context) (map[string][]byte, error)

	// Put durably stores one record. When it returns an error nothing was
	// written.
	Put(ctx context.Context, id string, data []byte) error
}

// Record is a storable entity. Normalize repairs records written by older
// versions; SetID fills an identity missing from the payload; Clone returns
// a deep copy.
type Record[T any] interface {
	core.Entity
	SetID(id string)
	Normalize()
	Clone() T
}

// Config configures a Store
type Config[T Record[T]] struct {
	Backend Backend
	// New allocates an empty record to decode into
	New func() T
	// Migrate runs after Normalize on every loaded record
	Migrate func(T)
}

// Validate validates the config
func (cfg *Config[T]) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Backend == nil {
		vb.RequiredField("Backend")
	}
	if cfg.New == nil {
		vb.RequiredField("New")
	}
	return vb.Build()
}

// Store is an in-memory map of records backed by a Backend
type Store[T Record[T]] struct {
	backend   Backend
	newRecord func() T
	migrate   func(T)

	mu      sync.RWMutex
	records map[string]T
}

// New creates an empty store. Call Load before serving reads.
func New[T Record[T]](cfg *Config[T]) (*Store[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Store[T]{
		backend:   cfg.Backend,
		newRecord: cfg.New,
		migrate:   cfg.Migrate,
		records:   make(map[string]T),
	}, nil
}

// Load replaces the in-memory map with the backend's contents
func (s *Store[T]) Load(ctx context.Context) error {
	raw, err := s.backend.LoadAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load records")
	}

	records := make(map[string]T, len(raw))
	for id, data := range raw {
		rec := s.newRecord()
		if err := json.Unmarshal(data, rec); err != nil {
			return errors.Wrapf(err, "failed to decode record %s", id)
		}
		switch rec.GetID() {
		case id:
		case "":
			slog.WarnContext(ctx, "record missing id, using key", "key", id)
			rec.SetID(id)
		default:
			return errors.Internalf("record %s is stored under key %s", rec.GetID(), id)
		}
		rec.Normalize()
		if s.migrate != nil {
			s.migrate(rec)
		}
		records[id] = rec
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	slog.DebugContext(ctx, "records loaded", "count", len(records))
	return nil
}

// Get returns a copy of the record for id
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		var zero T
		return zero, false
	}
	return rec.Clone(), true
}

// Exists reports whether a record for id is stored
func (s *Store[T]) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[id]
	return ok
}

// Put writes rec to the backend and then to memory. On a backend failure
// memory is left unchanged and the error is Internal.
func (s *Store[T]) Put(ctx context.Context, rec T) error {
	id := rec.GetID()
	if id == "" {
		return errors.InvalidArgument("record ID cannot be empty")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to encode record")
	}

	if err := s.backend.Put(ctx, id, data); err != nil {
		slog.ErrorContext(ctx, "failed to persist record",
			"id", id,
			"type", rec.GetType(),
			"error", err.Error())
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to persist record")
	}

	s.mu.Lock()
	s.records[id] = rec.Clone()
	s.mu.Unlock()

	return nil
}

// Values returns copies of every record ordered by id
func (s *Store[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GetID() < out[j].GetID()
	})
	return out
}

// Len returns the number of stored records
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
