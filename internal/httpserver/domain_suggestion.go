package httpserver

import (
	"github.com/gin-gonic/gin"

	suggestionHTTP "notes-to-tasks/internal/suggestion/delivery/http"
)

// setupSuggestionDomain mounts the suggestion endpoints under api.
func (srv HTTPServer) setupSuggestionDomain(api *gin.RouterGroup) {
	h := suggestionHTTP.New(srv.l, srv.suggestionUC)
	suggestionHTTP.RegisterRoutes(api, h, srv.mw)
}
