package http

import (
	"github.com/gauravmalhotra04/raiden-ai/internal/flashcard"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

type handler struct {
	l  log.Logger
	uc flashcard.UseCase
}

// New creates a new HTTP handler for flashcards.
func New(l log.Logger, uc flashcard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
