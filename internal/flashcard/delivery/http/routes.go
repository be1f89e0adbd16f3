package http

import (
	"github.com/gin-gonic/gin"

	"github.com/gauravmalhotra04/raiden-ai/internal/middleware"
)

// RegisterRoutes maps flashcard routes under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cards := rg.Group("/flashcards")
	{
		cards.GET("", h.List)
		cards.POST("", mw.RateLimit(), h.Create)
		cards.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
