package usecase

import (
	"context"
	"strings"

	"github.com/gauravmalhotra04/raiden-ai/internal/flashcard"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/flashcard/repository"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

func (uc *implUseCase) List(ctx context.Context) ([]model.Flashcard, error) {
	cards, err := uc.repo.ListFlashcards(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListFlashcards: %v", err)
		return nil, err
	}
	return cards, nil
}

func (uc *implUseCase) Create(ctx context.Context, input flashcard.CreateInput) (model.Flashcard, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return model.Flashcard{}, flashcard.ErrEmptyQuestion
	}
	answer := strings.TrimSpace(input.Answer)
	if answer == "" {
		return model.Flashcard{}, flashcard.ErrEmptyAnswer
	}

	card, err := uc.repo.CreateFlashcard(ctx, repo.CreateFlashcardOptions{Question: question, Answer: answer})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateFlashcard: %v", err)
		return model.Flashcard{}, err
	}
	return card, nil
}

// Delete returns ErrFlashcardNotFound when the card does not exist.
func (uc *implUseCase) Delete(ctx context.Context, id string) (model.Flashcard, error) {
	card, err := uc.repo.GetFlashcard(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetFlashcard: %v", err)
		return model.Flashcard{}, err
	}
	if card.ID == "" {
		return model.Flashcard{}, flashcard.ErrFlashcardNotFound
	}

	deleted, err := uc.repo.DeleteFlashcard(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteFlashcard: %v", err)
		return model.Flashcard{}, err
	}
	if !deleted {
		return model.Flashcard{}, flashcard.ErrFlashcardNotFound
	}
	return card, nil
}
