package http

import (
	"github.com/gin-gonic/gin"

	"github.com/gauravmalhotra04/raiden-ai/internal/middleware"
)

// RegisterRoutes maps attendance routes under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	att := rg.Group("/attendance")
	{
		att.GET("", h.Month)
		att.POST("", mw.RateLimit(), h.Upsert)
		att.GET("/export", h.Export)
		att.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
