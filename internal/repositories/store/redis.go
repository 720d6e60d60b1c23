package store

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const redisKeyPrefix = "progression:"

// RedisConfig configures a RedisBackend
type RedisConfig struct {
	Client    redisclient.Client
	Namespace string
}

// Validate validates the config
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	errors.ValidateRequired("Namespace", cfg.Namespace, vb)
	return vb.Build()
}

// RedisBackend keeps a namespace in one hash, field = identity. It does not
// own the client.
type RedisBackend struct {
	client redisclient.Client
	key    string
}

// NewRedisBackend creates a backend for one namespace
func NewRedisBackend(cfg *RedisConfig) (*RedisBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &RedisBackend{
		client: cfg.Client,
		key:    redisKeyPrefix + cfg.Namespace,
	}, nil
}

// Key returns the hash key holding the namespace
func (b *RedisBackend) Key() string {
	return b.key
}

// LoadAll returns every field of the namespace hash
func (b *RedisBackend) LoadAll(ctx context.Context) (map[string][]byte, error) {
	fields, err := b.client.HGetAll(ctx, b.key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", b.key)
	}

	out := make(map[string][]byte, len(fields))
	for id, data := range fields {
		out[id] = []byte(data)
	}
	return out, nil
}

// Put sets one field of the namespace hash
func (b *RedisBackend) Put(ctx context.Context, id string, data []byte) error {
	if err := b.client.HSet(ctx, b.key, id, data).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s in %s", id, b.key)
	}
	return nil
}
