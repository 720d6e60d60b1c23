package profile

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/store"
)

const (
	defaultCacheSize = 16
	// rankingKey caches the full ordering used by GetRank
	rankingKey = 0

	errProfileNil     = "profile cannot be nil"
	errProfileIDEmpty = "profile ID cannot be empty"
)

// Config contains configuration for the store-backed profile repository
type Config struct {
	Store *store.Store[*entities.Profile]
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
	store *store.Store[*entities.Profile]
	top   *lru.Cache
	// mu keeps a leaderboard rebuild from caching a view older than a write
	mu sync.RWMutex
}

// NewStore creates a profile repository over a loaded store
func NewStore(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
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
		top:   top,
	}, nil
}

func (r *storeRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	p, ok := r.store.Get(input.ID)
	if !ok {
		return nil, errors.NotFoundf("profile with ID %s not found", input.ID)
	}

	return &GetOutput{Profile: p}, nil
}

func (r *storeRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if r.store.Exists(input.Profile.ID) {
		return nil, errors.AlreadyExistsf("profile with ID %s already exists", input.Profile.ID)
	}

	if err := r.put(ctx, input.Profile); err != nil {
		return nil, err
	}

	return &CreateOutput{Profile: input.Profile}, nil
}

func (r *storeRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if !r.store.Exists(input.Profile.ID) {
		return nil, errors.NotFoundf("profile with ID %s not found", input.Profile.ID)
	}

	if err := r.put(ctx, input.Profile); err != nil {
		return nil, err
	}

	return &UpdateOutput{Profile: input.Profile}, nil
}

func (r *storeRepository) ListTop(ctx context.Context, input ListTopInput) (*ListTopOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	ranked := r.ranked(ctx, limit)
	out := make([]*entities.Profile, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, p.Clone())
	}

	return &ListTopOutput{Profiles: out}, nil
}

func (r *storeRepository) GetRank(ctx context.Context, input GetRankInput) (*GetRankOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	ranked := r.ranked(ctx, rankingKey)
	for i, p := range ranked {
		if p.ID == input.ID {
			return &GetRankOutput{Rank: i + 1, Total: len(ranked)}, nil
		}
	}

	return nil, errors.NotFoundf("profile with ID %s not found", input.ID)
}

func (r *storeRepository) put(ctx context.Context, p *entities.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Put(ctx, p); err != nil {
		return errors.Wrapf(err, "failed to save profile %s", p.ID)
	}
	r.top.Purge()
	return nil
}

// ranked returns the first limit profiles of the leaderboard, or all of
// them when limit is rankingKey. The slice is shared with the cache.
func (r *storeRepository) ranked(ctx context.Context, limit int) []*entities.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cached, ok := r.top.Get(limit); ok {
		return cached.([]*entities.Profile)
	}

	all := r.store.Values()
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].XP != all[j].XP {
			return all[i].XP > all[j].XP
		}
		return all[i].ID < all[j].ID
	})
	if limit != rankingKey && len(all) > limit {
		all = all[:limit]
	}

	r.top.Add(limit, all)
	slog.DebugContext(ctx, "profile leaderboard rebuilt", "limit", limit, "size", len(all))
	return all
}
