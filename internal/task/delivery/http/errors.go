package http

import (
	"errors"
	"net/http"

	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	pkgErrors "github.com/gauravmalhotra04/raiden-ai/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unknown is reported as an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyDescription),
		errors.Is(err, task.ErrInvalidDueDate),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidPeriod):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrRemindersUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
