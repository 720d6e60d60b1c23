// Package leveltitle loads the level milestone table: an ordered list of
// level, title and color kept in its own JSON file.
package leveltitle

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/store"
)

// Repository defines read access to the level title table
type Repository interface {
	// List returns every title ordered by level
	List(ctx context.Context) ([]entities.LevelTitle, error)

	// ForLevel returns the highest title whose level is <= level
	// Returns errors.NotFound if no title applies
	ForLevel(ctx context.Context, level int) (*entities.LevelTitle, error)
}

// DefaultTitles is written out when the table file does not exist
func DefaultTitles() []entities.LevelTitle {
	return []entities.LevelTitle{
		{Level: 1, Title: "Newcomer", Color: "#95a5a6"},
		{Level: 5, Title: "Regular", Color: "#2ecc71"},
		{Level: 10, Title: "Active Member", Color: "#3498db"},
		{Level: 20, Title: "Veteran", Color: "#9b59b6"},
		{Level: 30, Title: "Elite", Color: "#e67e22"},
		{Level: 50, Title: "Legend", Color: "#e74c3c"},
		{Level: 75, Title: "Mythic", Color: "#f1c40f"},
		{Level: 100, Title: "Immortal", Color: "#1abc9c"},
	}
}

// Config configures the file-backed title table
type Config struct {
	Path string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", cfg.Path, vb)
	return vb.Build()
}

// FileRepository serves the table from memory after Load
type FileRepository struct {
	path string

	mu     sync.RWMutex
	titles []entities.LevelTitle
}

// NewFile creates a title repository for cfg.Path
func NewFile(cfg *Config) (*FileRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &FileRepository{path: cfg.Path}, nil
}

// Load reads the table, seeding the file with DefaultTitles when it is
// missing
func (r *FileRepository) Load(ctx context.Context) error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		titles := DefaultTitles()
		doc, err := json.MarshalIndent(titles, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode default titles")
		}
		if err := store.WriteFileAtomic(r.path, doc, 0o644); err != nil {
			return errors.Wrapf(err, "failed to seed %s", r.path)
		}
		slog.InfoContext(ctx, "seeded level titles", "path", r.path, "count", len(titles))
		r.set(titles)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", r.path)
	}

	var titles []entities.LevelTitle
	if err := json.Unmarshal(data, &titles); err != nil {
		return errors.Wrapf(err, "failed to parse %s", r.path)
	}
	r.set(titles)
	return nil
}

func (r *FileRepository) set(titles []entities.LevelTitle) {
	sorted := append([]entities.LevelTitle{}, titles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level < sorted[j].Level
	})

	r.mu.Lock()
	r.titles = sorted
	r.mu.Unlock()
}

// List returns every title ordered by level
func (r *FileRepository) List(_ context.Context) ([]entities.LevelTitle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entities.LevelTitle{}, r.titles...), nil
}

// ForLevel returns the highest title whose level is <= level
func (r *FileRepository) ForLevel(_ context.Context, level int) (*entities.LevelTitle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := sort.Search(len(r.titles), func(i int) bool {
		return r.titles[i].Level > level
	})
	if idx == 0 {
		return nil, errors.NotFoundf("no title for level %d", level)
	}

	t := r.titles[idx-1]
	return &t, nil
}
