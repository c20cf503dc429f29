package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers media serving routes. Room photos are public.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/media")

	group.GET("/:id", h.ServeFile)
	group.GET("/:id/thumbnail", h.ServeThumbnail)
}
