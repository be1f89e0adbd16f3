package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/gauravmalhotra04/raiden-ai/internal/middleware"
	taskHTTP "github.com/gauravmalhotra04/raiden-ai/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/study_planner/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
