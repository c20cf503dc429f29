package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers room routes. Reads and search are public; writes
// are admin only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/rooms")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/search", h.Search)
	group.GET("/:id", h.Get)

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.POST("/:id/image", h.UploadImage)
		admin.DELETE("/:id", h.Delete)
	}
}
