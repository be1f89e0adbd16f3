package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	sqliteCfg "github.com/gauravmalhotra04/raiden-ai/config/sqlite"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/flashcard/repository"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

func (r *implRepository) CreateFlashcard(ctx context.Context, opt repo.CreateFlashcardOptions) (model.Flashcard, error) {
	const query = `INSERT INTO flashcards (id, question, answer, created_at) VALUES (?, ?, ?, ?)`

	f := model.Flashcard{
		ID:        uuid.NewString(),
		Question:  opt.Question,
		Answer:    opt.Answer,
		CreatedAt: time.Now().In(r.loc).Truncate(time.Second),
	}
	if _, err := r.db.ExecContext(ctx, query, f.ID, f.Question, f.Answer, f.CreatedAt.Format(sqliteCfg.TimeLayout)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateFlashcard"), err)
		return model.Flashcard{}, repo.ErrFailedToInsert
	}
	return f, nil
}

func (r *implRepository) GetFlashcard(ctx context.Context, id string) (model.Flashcard, error) {
	const query = `SELECT id, question, answer, created_at FROM flashcards WHERE id = ?`

	f, err := r.scan(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Flashcard{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetFlashcard"), err)
		return model.Flashcard{}, repo.ErrFailedToGet
	}
	return f, nil
}

// ListFlashcards returns every card, newest first.
func (r *implRepository) ListFlashcards(ctx context.Context) ([]model.Flashcard, error) {
	const query = `SELECT id, question, answer, created_at FROM flashcards ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFlashcards"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var cards []model.Flashcard
	for rows.Next() {
		f, err := r.scan(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListFlashcards"), err)
			return nil, repo.ErrFailedToList
		}
		cards = append(cards, f)
	}
	return cards, rows.Err()
}

func (r *implRepository) DeleteFlashcard(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM flashcards WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteFlashcard"), err)
		return false, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scan(row rowScanner) (model.Flashcard, error) {
	var (
		f         model.Flashcard
		createdAt string
	)
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &createdAt); err != nil {
		return model.Flashcard{}, err
	}
	t, err := time.ParseInLocation(sqliteCfg.TimeLayout, createdAt, r.loc)
	if err != nil {
		return model.Flashcard{}, err
	}
	f.CreatedAt = t
	return f, nil
}
