package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
)

const createRecordsTable = `CREATE TABLE IF NOT EXISTS records (
	namespace  TEXT    NOT NULL,
	id         TEXT    NOT NULL,
	data       TEXT    NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (namespace, id)
)`

// OpenSQLite opens the single-file database shared by every SQLite backend
// and makes sure the records table exists.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// one writer keeps upserts serialized
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, createRecordsTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create records table")
	}

	return db, nil
}

// SQLiteConfig configures a SQLiteBackend
type SQLiteConfig struct {
	DB        *sql.DB
	Namespace string
	Clock     clock.Clock
}

// Validate validates the config
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.DB == nil {
		vb.RequiredField("DB")
	}
	errors.ValidateRequired("Namespace", cfg.Namespace, vb)
	return vb.Build()
}

// SQLiteBackend stores one row per record in a shared records table. It
// does not own the DB handle.
type SQLiteBackend struct {
	db        *sql.DB
	namespace string
	clock     clock.Clock
}

// NewSQLiteBackend creates a backend for one namespace
func NewSQLiteBackend(cfg *SQLiteConfig) (*SQLiteBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &SQLiteBackend{
		db:        cfg.DB,
		namespace: cfg.Namespace,
		clock:     c,
	}, nil
}

// LoadAll returns every record in the namespace
func (b *SQLiteBackend) LoadAll(ctx context.Context) (map[string][]byte, error) {
	rows, err := b.db.QueryContext(ctx,
		`SELECT id, data FROM records WHERE namespace = ?`, b.namespace)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s records", b.namespace)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string][]byte)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, errors.Wrapf(err, "scan %s record", b.namespace)
		}
		out[id] = []byte(data)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterate %s records", b.namespace)
	}

	return out, nil
}

// Put upserts one record
func (b *SQLiteBackend) Put(ctx context.Context, id string, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO records (namespace, id, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace, id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		b.namespace, id, string(data), b.clock.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return errors.Wrapf(err, "upsert %s record %s", b.namespace, id)
	}
	return nil
}
