package http

import (
	"github.com/gin-gonic/gin"

	"notes-to-tasks/internal/middleware"
)

// RegisterRoutes maps the suggestion endpoints. Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	suggestions := rg.Group("/suggestions", mw.RateLimit())
	{
		suggestions.POST("", h.Suggest)
		suggestions.POST("/image", h.SuggestImage)
		suggestions.POST("/feedback", h.Feedback)
	}
}
