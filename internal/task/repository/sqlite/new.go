package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/task/repository"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	loc *time.Location
	now func() time.Time
}

// New creates a SQLite-backed task Repository. Stored wall clocks are
// interpreted in loc.
func New(db *sql.DB, l log.Logger, loc *time.Location) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.Local
	}
	return &implRepository{db: db, l: l, loc: loc, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
