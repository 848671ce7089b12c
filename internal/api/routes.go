package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/logos", h.listLogos)
		api.GET("/logos/:name", h.logoHandler)
		api.POST("/render", h.renderHandler)
	}
}
