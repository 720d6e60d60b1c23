// Package app wires configuration, storage, engine and orchestrators into a
// running progression engine.
package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	characterorch "github.com/KirkDiggler/rpg-progression/internal/orchestrators/character"
	experienceorch "github.com/KirkDiggler/rpg-progression/internal/orchestrators/experience"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/gameevents"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/leveltitle"
	profilerepo "github.com/KirkDiggler/rpg-progression/internal/repositories/profile"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/store"
	"github.com/KirkDiggler/rpg-progression/internal/scheduler"
	"github.com/KirkDiggler/rpg-progression/internal/services/character"
	"github.com/KirkDiggler/rpg-progression/internal/services/experience"
)

// Store namespaces
const (
	NamespaceProfiles   = "profiles"
	NamespaceCharacters = "characters"
)

// LevelTitlesFile is the reference table's file name inside the data dir
const LevelTitlesFile = "level_titles.json"

// Config holds what New needs to build an App
type Config struct {
	Settings *config.Config

	// Optional
	Clock      clock.Clock
	DiceRoller dice.Roller
	Catalog    *catalog.Catalog
	// RedisClient replaces the client built from Settings for the redis
	// backend. The App does not close an injected client.
	RedisClient redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	return c.Settings.Validate()
}

// App is a loaded engine ready to serve operations
type App struct {
	Experience experience.Service
	Characters character.Service
	Scheduler  *scheduler.Scheduler
	EventBus   events.EventBus

	closers []func() error
}

// New opens the configured backend, loads every store and builds the
// orchestrators. Close releases the backend handles.
func New(ctx context.Context, cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	settings := cfg.Settings
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	a := &App{}
	ok := false
	defer func() {
		if !ok {
			_ = a.Close()
		}
	}()

	if err := os.MkdirAll(settings.DataDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create data dir %s", settings.DataDir)
	}

	newBackend, err := a.openBackend(ctx, cfg, clk)
	if err != nil {
		return nil, err
	}

	profileBackend, err := newBackend(NamespaceProfiles)
	if err != nil {
		return nil, err
	}
	profileStore, err := store.New(&store.Config[*entities.Profile]{
		Backend: profileBackend,
		New:     func() *entities.Profile { return &entities.Profile{} },
	})
	if err != nil {
		return nil, err
	}

	characterBackend, err := newBackend(NamespaceCharacters)
	if err != nil {
		return nil, err
	}
	characterStore, err := store.New(&store.Config[*entities.Character]{
		Backend: characterBackend,
		New:     func() *entities.Character { return &entities.Character{} },
		Migrate: characterrepo.MigrateClassDefaults(cat.Class),
	})
	if err != nil {
		return nil, err
	}

	titles, err := leveltitle.NewFile(&leveltitle.Config{
		Path: filepath.Join(settings.DataDir, LevelTitlesFile),
	})
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return profileStore.Load(gctx) })
	g.Go(func() error { return characterStore.Load(gctx) })
	g.Go(func() error { return titles.Load(gctx) })
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load stores")
	}

	profiles, err := profilerepo.NewStore(&profilerepo.Config{Store: profileStore})
	if err != nil {
		return nil, err
	}
	characters, err := characterrepo.NewStore(&characterrepo.Config{Store: characterStore, Clock: clk})
	if err != nil {
		return nil, err
	}

	xpEngine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: roller})
	if err != nil {
		return nil, err
	}

	a.EventBus = events.NewBus()
	gameevents.SubscribeLogger(a.EventBus)

	loc := settings.Location()
	exp, err := experienceorch.New(&experienceorch.Config{
		ProfileRepo:     profiles,
		TitleRepo:       titles,
		Engine:          xpEngine,
		Clock:           clk,
		IDGenerator:     idgen.NewUUID("voice"),
		EventBus:        a.EventBus,
		Location:        loc,
		MinVoiceSeconds: settings.Voice.MinSessionSeconds,
	})
	if err != nil {
		return nil, err
	}
	a.Experience = exp

	chars, err := characterorch.New(&characterorch.Config{
		CharacterRepo: characters,
		Catalog:       cat,
		Clock:         clk,
		EventBus:      a.EventBus,
		Location:      loc,
	})
	if err != nil {
		return nil, err
	}
	a.Characters = chars

	a.Scheduler, err = scheduler.New(&scheduler.Config{
		Experience:    exp,
		FlushSchedule: settings.Voice.FlushSchedule,
		Location:      loc,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "progression engine loaded",
		"backend", settings.Storage.Backend,
		"data_dir", settings.DataDir,
		"profiles", profileStore.Len(),
		"characters", characterStore.Len())

	ok = true
	return a, nil
}

// Run drives the scheduler until ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	return a.Scheduler.Run(ctx)
}

// Close releases backend handles in reverse order of opening
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

type backendFactory func(namespace string) (store.Backend, error)

func (a *App) openBackend(ctx context.Context, cfg *Config, clk clock.Clock) (backendFactory, error) {
	settings := cfg.Settings

	switch settings.Storage.Backend {
	case config.BackendMemory:
		return func(string) (store.Backend, error) {
			return store.NewMemoryBackend(), nil
		}, nil

	case config.BackendSQLite:
		path := settings.SQLiteFile()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create sqlite dir")
		}
		db, err := store.OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return func(namespace string) (store.Backend, error) {
			return store.NewSQLiteBackend(&store.SQLiteConfig{DB: db, Namespace: namespace, Clock: clk})
		}, nil

	case config.BackendRedis:
		client := cfg.RedisClient
		if client == nil {
			var err error
			client, err = redisclient.NewClient(settings.Storage.RedisAddr, &redisclient.Options{
				Password: settings.Storage.RedisPassword,
				DB:       settings.Storage.RedisDB,
				UseTLS:   settings.Storage.RedisTLS,
			})
			if err != nil {
				return nil, errors.Wrap(err, "failed to create redis client")
			}
			a.closers = append(a.closers, client.Close)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
		}
		prefix := settings.Storage.RedisNamespace
		return func(namespace string) (store.Backend, error) {
			if prefix != "" {
				namespace = prefix + ":" + namespace
			}
			return store.NewRedisBackend(&store.RedisConfig{Client: client, Namespace: namespace})
		}, nil

	default:
		return func(namespace string) (store.Backend, error) {
			return store.NewFileBackend(&store.FileConfig{
				Path: filepath.Join(settings.DataDir, namespace+".json"),
			})
		}, nil
	}
}
