package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const sqliteFile = "gratitude.sqlite"

type sqliteBlobs struct {
	db  *sqlx.DB
	dir string
}

// NewSQLite keeps blobs in a single sqlite database inside dir.
func NewSQLite(dir string) (Backend, error) {
	if dir == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	dsn := filepath.Join(dir, sqliteFile) + "?_pragma=busy_timeout(5000)"
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect sqlite: %w", err)
	}
	// One writer keeps saves ordered.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	slog.Debug("sqlite store ready", "path", dsn)
	return &sqliteBlobs{db: db, dir: dir}, nil
}

func runMigrations(db *sql.DB) error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("store: set dialect: %w", err)
	}
	migrationsDir, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("store: migrations directory: %w", err)
	}
	goose.SetBaseFS(migrationsDir)
	goose.SetLogger(gooseLogger{})
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("store: run migrations: %w", err)
	}
	return nil
}

func (s *sqliteBlobs) Read(key string) ([]byte, error) {
	var value []byte
	err := s.db.Get(&value, `SELECT value FROM blobs WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return value, nil
}

func (s *sqliteBlobs) Write(key string, data []byte) error {
	query := `INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.Exec(query, key, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *sqliteBlobs) Erase(key string) error {
	result, err := s.db.Exec(`DELETE FROM blobs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return nil
}

func (s *sqliteBlobs) Has(key string) bool {
	var count int
	if err := s.db.Get(&count, `SELECT COUNT(1) FROM blobs WHERE key = ?`, key); err != nil {
		return false
	}
	return count > 0
}

func (s *sqliteBlobs) Keys(ctx context.Context) []string {
	var keys []string
	if err := s.db.SelectContext(ctx, &keys, `SELECT key FROM blobs ORDER BY key`); err != nil {
		slog.Warn("store: list keys", "error", err)
		return []string{}
	}
	return keys
}

func (s *sqliteBlobs) Dir() string {
	return s.dir
}

func (s *sqliteBlobs) Close() error {
	return s.db.Close()
}

// gooseLogger routes migration chatter to slog instead of stdout.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...))
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
