package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers review routes. Listing is public; posting and
// deleting require authentication.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/reviews")

	// === Public Routes ===
	group.GET("", h.List)

	// === Authenticated Routes ===
	group.POST("", authMiddleware, h.Create)
	group.DELETE("/:id", authMiddleware, h.Delete)
}
