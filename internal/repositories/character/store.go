package character

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/store"
)

const (
	defaultCacheSize = 16

	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

// Config contains configuration for the store-backed character repository
type Config struct {
	Store *store.Store[*entities.Character]
	Clock clock.Clock
	// CacheSize bounds the number of cached leaderboard slices
	CacheSize int
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Store == nil {
		return errors.InvalidArgument("store cannot be nil")
	}
	if cfg.CacheSize < 0 {
		return errors.InvalidArgument("cache size cannot be negative")
	}
	return nil
}

type storeRepository struct {
	store *store.Store[*entities.Character]
	clock clock.Clock
	top   *lru.Cache
	// mu keeps a leaderboard rebuild from caching a view older than a write
	mu sync.RWMutex
}

// NewStore creates a character repository over a loaded store
func NewStore(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	size := cfg.CacheSize
	if size == 0 {
		size = defaultCacheSize
	}
	top, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create leaderboard cache")
	}

	return &storeRepository{
		store: cfg.Store,
		clock: c,
		top:   top,
	}, nil
}

func (r *storeRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if r.store.Exists(input.Character.ID) {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	if err := r.put(ctx, input.Character); err != nil {
		return nil, err
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *storeRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	c, ok := r.store.Get(input.ID)
	if !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &GetOutput{Character: c}, nil
}

func (r *storeRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if !r.store.Exists(input.Character.ID) {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID)
	}

	if err := r.put(ctx, input.Character); err != nil {
		return nil, err
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *storeRepository) ListTop(ctx context.Context, input ListTopInput) (*ListTopOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	ranked := r.ranked(ctx, limit)
	out := make([]*entities.Character, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.Clone())
	}

	return &ListTopOutput{Characters: out}, nil
}

func (r *storeRepository) put(ctx context.Context, c *entities.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.UpdatedAt = r.clock.Now().UTC()
	if err := r.store.Put(ctx, c); err != nil {
		return errors.Wrapf(err, "failed to save character %s", c.ID)
	}
	r.top.Purge()
	return nil
}

func (r *storeRepository) ranked(ctx context.Context, limit int) []*entities.Character {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cached, ok := r.top.Get(limit); ok {
		return cached.([]*entities.Character)
	}

	all := r.store.Values()
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Level != all[j].Level {
			return all[i].Level > all[j].Level
		}
		if all[i].XP != all[j].XP {
			return all[i].XP > all[j].XP
		}
		return all[i].ID < all[j].ID
	})
	if len(all) > limit {
		all = all[:limit]
	}

	r.top.Add(limit, all)
	slog.DebugContext(ctx, "character leaderboard rebuilt", "limit", limit, "size", len(all))
	return all
}
