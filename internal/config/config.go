// Package config loads process configuration from an optional TOML file
// overlaid with PROGRESSION_* environment variables.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full process configuration
type Config struct {
	DataDir  string        `toml:"data_dir" env:"PROGRESSION_DATA_DIR"`
	Timezone string        `toml:"timezone" env:"PROGRESSION_TIMEZONE"`
	Storage  StorageConfig `toml:"storage" envPrefix:"PROGRESSION_STORAGE_"`
	Voice    VoiceConfig   `toml:"voice" envPrefix:"PROGRESSION_VOICE_"`
	Log      LogConfig     `toml:"log" envPrefix:"PROGRESSION_LOG_"`
}

// StorageConfig selects and configures the record backend
type StorageConfig struct {
	Backend string `toml:"backend" env:"BACKEND"`
	// SQLitePath defaults to <data_dir>/progression.db
	SQLitePath     string `toml:"sqlite_path" env:"SQLITE_PATH"`
	RedisAddr      string `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword  string `toml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB        int    `toml:"redis_db" env:"REDIS_DB"`
	RedisTLS       bool   `toml:"redis_tls" env:"REDIS_TLS"`
	RedisNamespace string `toml:"redis_namespace" env:"REDIS_NAMESPACE"`
}

// VoiceConfig tunes voice session tracking
type VoiceConfig struct {
	FlushSchedule     string `toml:"flush_schedule" env:"FLUSH_SCHEDULE"`
	MinSessionSeconds int64  `toml:"min_session_seconds" env:"MIN_SESSION_SECONDS"`
}

// LogConfig configures the default slog logger
type LogConfig struct {
	Level     string `toml:"level" env:"LEVEL"`
	Format    string `toml:"format" env:"FORMAT"`
	AddSource bool   `toml:"add_source" env:"ADD_SOURCE"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		DataDir:  "./data",
		Timezone: "UTC",
		Storage: StorageConfig{
			Backend: BackendFile,
		},
		Voice: VoiceConfig{
			FlushSchedule:     "@every 5m",
			MinSessionSeconds: 30,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file, or an empty path, yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			slog.Debug("config file not found, using defaults", "path", path)
		case err != nil:
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		default:
			if err := decode(bytes.NewReader(data), cfg); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config "+path)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Validate checks every field
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("data_dir", c.DataDir, vb)
	errors.ValidateEnum("storage.backend", c.Storage.Backend,
		[]string{BackendFile, BackendSQLite, BackendRedis, BackendMemory}, vb)
	if c.Storage.Backend == BackendRedis && c.Storage.RedisAddr == "" {
		vb.Field("storage.redis_addr", "is required for the redis backend")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		vb.Fieldf("timezone", "unknown timezone %q", c.Timezone)
	}
	errors.ValidateRequired("voice.flush_schedule", c.Voice.FlushSchedule, vb)
	if c.Voice.MinSessionSeconds <= 0 {
		vb.Field("voice.min_session_seconds", "must be positive")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	errors.ValidateEnum("log.format", c.Log.Format, []string{FormatText, FormatJSON}, vb)

	return vb.Build()
}

// Location returns the timezone calendar dates are computed in
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SQLiteFile returns the database path for the sqlite backend
func (c *Config) SQLiteFile() string {
	if c.Storage.SQLitePath != "" {
		return c.Storage.SQLitePath
	}
	return filepath.Join(c.DataDir, "progression.db")
}

// NewLogger builds a logger writing to w in the configured level and format
func (c *LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: c.AddSource}

	if c.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(s)))
	return level, err
}
