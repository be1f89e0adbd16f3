package http

import (
	"github.com/gin-gonic/gin"

	"github.com/gauravmalhotra04/raiden-ai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Mutating routes are rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/study_planner/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", mw.RateLimit(), h.Update)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
		tasks.GET("/:id/reminders", h.Reminders)
	}
}
