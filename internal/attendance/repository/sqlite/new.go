package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/attendance/repository"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	loc *time.Location
	now func() time.Time
}

// New creates a SQLite-backed attendance Repository.
func New(db *sql.DB, l log.Logger, loc *time.Location) repository.Repository {
	if db == nil {
		panic("attendance/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.Local
	}
	return &implRepository{db: db, l: l, loc: loc, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("attendance/repository/sqlite.%s", method)
}
