package http

import (
	"errors"
	"net/http"

	"github.com/gauravmalhotra04/raiden-ai/internal/attendance"
	pkgErrors "github.com/gauravmalhotra04/raiden-ai/pkg/errors"
)

var (
	errInvalidBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errInvalidQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "year and month must be numbers")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, attendance.ErrRecordNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, attendance.ErrInvalidDate),
		errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrInvalidMonth),
		errors.Is(err, attendance.ErrInvalidFormat):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
