package usecase

import (
	"github.com/gauravmalhotra04/raiden-ai/internal/flashcard"
	"github.com/gauravmalhotra04/raiden-ai/internal/flashcard/repository"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

var _ flashcard.UseCase = (*implUseCase)(nil)

// New creates a new flashcard UseCase implementation.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
