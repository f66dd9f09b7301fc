package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты жизненного цикла сессий и их событий
	sessions := api.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.DELETE("/:id", h.closeSession)
		sessions.GET("/:id/stream", h.streamDirectives)
		sessions.GET("/:id/view", h.getView)

		events := sessions.Group("/:id/events")
		{
			events.POST("/viewport-settled", h.viewportSettled)
			events.POST("/marker-click", h.markerClicked)
			events.POST("/list-click", h.listItemClicked)
			events.POST("/dismiss", h.dismissSelection)
			events.POST("/drawer-toggle", h.toggleDrawer)
			events.POST("/row-visibility", h.rowVisibility)
		}
	}

	// Маршруты чтения набора происшествий
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats) // Регистрируется раньше маршрута с параметром
		incidents.GET("/:id", h.getIncident)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
