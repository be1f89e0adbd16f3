package repository

import (
	"context"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

// Repository stores flashcards. GetFlashcard returns a zero value for a missing id.
type Repository interface {
	CreateFlashcard(ctx context.Context, opt CreateFlashcardOptions) (model.Flashcard, error)
	GetFlashcard(ctx context.Context, id string) (model.Flashcard, error)
	ListFlashcards(ctx context.Context) ([]model.Flashcard, error)
	DeleteFlashcard(ctx context.Context, id string) (bool, error)
}
