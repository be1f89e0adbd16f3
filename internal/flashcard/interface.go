package flashcard

import (
	"context"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) ([]model.Flashcard, error)
	Create(ctx context.Context, input CreateInput) (model.Flashcard, error)
	// Delete removes a card and returns it as it was.
	Delete(ctx context.Context, id string) (model.Flashcard, error)
}
