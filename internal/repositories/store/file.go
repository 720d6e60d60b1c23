package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// FileConfig configures a FileBackend
type FileConfig struct {
	// Path of the JSON document holding the namespace
	Path string
}

// Validate validates the config
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", cfg.Path, vb)
	return vb.Build()
}

// FileBackend keeps a whole namespace in one human-readable JSON object,
// {"<id>": <record>, ...}, and rewrites it atomically on every Put.
type FileBackend struct {
	path string

	mu      sync.Mutex
	loaded  bool
	records map[string]json.RawMessage
}

// NewFileBackend creates a file backend. The file is not touched until the
// first LoadAll or Put.
func NewFileBackend(cfg *FileConfig) (*FileBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &FileBackend{
		path:    filepath.Clean(cfg.Path),
		records: make(map[string]json.RawMessage),
	}, nil
}

// Path returns the backing file
func (b *FileBackend) Path() string {
	return b.path
}

// LoadAll reads the file. A missing or empty file is an empty namespace.
func (b *FileBackend) LoadAll(ctx context.Context) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.readLocked(); err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(b.records))
	for id, raw := range b.records {
		out[id] = append([]byte(nil), raw...)
	}
	return out, nil
}

// Put sets one record and rewrites the file. If the write fails the
// previous contents stay in effect.
func (b *FileBackend) Put(ctx context.Context, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(data) {
		return errors.InvalidArgumentf("record %s is not valid JSON", id)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.loaded {
		if err := b.readLocked(); err != nil {
			return err
		}
	}

	prev, had := b.records[id]
	b.records[id] = append(json.RawMessage(nil), data...)

	doc, err := json.MarshalIndent(b.records, "", "  ")
	if err == nil {
		err = WriteFileAtomic(b.path, doc, 0o644)
	}
	if err != nil {
		if had {
			b.records[id] = prev
		} else {
			delete(b.records, id)
		}
		return errors.Wrapf(err, "failed to write %s", b.path)
	}

	return nil
}

func (b *FileBackend) readLocked() error {
	data, err := os.ReadFile(b.path)
	switch {
	case os.IsNotExist(err):
		b.records = make(map[string]json.RawMessage)
		b.loaded = true
		return nil
	case err != nil:
		return errors.Wrapf(err, "failed to read %s", b.path)
	}

	records := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			return errors.Wrapf(err, "failed to parse %s", b.path)
		}
	}
	b.records = records
	b.loaded = true
	return nil
}

// WriteFileAtomic writes data to a temp file in the target directory,
// syncs it and renames it over path, so readers see either the old or the
// new contents.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}

	return nil
}
