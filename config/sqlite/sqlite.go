package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gauravmalhotra04/raiden-ai/config"
)

// migrations are applied in order on every Connect. Each statement must be idempotent.
// Times are stored as TEXT in TimeLayout so the driver never converts them to UTC.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		due_date TEXT NOT NULL,
		priority INTEGER NOT NULL DEFAULT 2,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		calendar_event_id TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_completed_due ON tasks(completed, due_date);`,
	`CREATE TABLE IF NOT EXISTS flashcards (
		id TEXT PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);`,
}

// TimeLayout is the storage format of every time column. It sorts lexicographically.
const TimeLayout = "2006-01-02 15:04:05"

// Connect opens the SQLite database file and runs migrations.
func Connect(ctx context.Context, cfg config.SQLiteConfig) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if err := ensureDir(cfg.Path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=ON", cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Disconnect releases the database resources.
func Disconnect(ctx context.Context, db *sql.DB) {
	if db == nil {
		return
	}
	_ = db.Close()
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
