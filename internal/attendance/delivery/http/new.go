package http

import (
	"github.com/gauravmalhotra04/raiden-ai/internal/attendance"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

type handler struct {
	l  log.Logger
	uc attendance.UseCase
}

// New creates a new HTTP handler for the attendance tracker.
func New(l log.Logger, uc attendance.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
