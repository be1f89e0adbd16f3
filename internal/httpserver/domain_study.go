package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	attendanceHTTP "github.com/gauravmalhotra04/raiden-ai/internal/attendance/delivery/http"
	flashcardHTTP "github.com/gauravmalhotra04/raiden-ai/internal/flashcard/delivery/http"
	"github.com/gauravmalhotra04/raiden-ai/internal/middleware"
)

// setupStudyDomains registers flashcards and attendance. Both are optional.
func (srv HTTPServer) setupStudyDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.flashcardUC != nil {
		flashcardHTTP.RegisterRoutes(api, flashcardHTTP.New(srv.l, srv.flashcardUC), mw)
		srv.l.Infof(ctx, "Flashcard domain registered")
	}

	if srv.attendanceUC != nil {
		attendanceHTTP.RegisterRoutes(api, attendanceHTTP.New(srv.l, srv.attendanceUC), mw)
		srv.l.Infof(ctx, "Attendance domain registered")
	}

	return nil
}
