package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/flashcard/repository"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	loc *time.Location
}

// New creates a SQLite-backed flashcard Repository.
func New(db *sql.DB, l log.Logger, loc *time.Location) repository.Repository {
	if db == nil {
		panic("flashcard/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.Local
	}
	return &implRepository{db: db, l: l, loc: loc}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("flashcard/repository/sqlite.%s", method)
}
