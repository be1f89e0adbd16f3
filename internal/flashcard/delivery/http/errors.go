package http

import (
	"errors"
	"net/http"

	"github.com/gauravmalhotra04/raiden-ai/internal/flashcard"
	pkgErrors "github.com/gauravmalhotra04/raiden-ai/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, flashcard.ErrFlashcardNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, flashcard.ErrEmptyQuestion),
		errors.Is(err, flashcard.ErrEmptyAnswer):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
