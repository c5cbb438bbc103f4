package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check, без ключа
	api.GET("/system/health", h.healthCheck)

	// Маршруты симуляции, ключ нужен только если API_KEYS задан
	sim := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		sim.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		sim.GET("/run_simulation", h.runSimulation)
		sim.GET("/get_fires", h.getFires)
		sim.GET("/history", h.history)
	}
}

// RegisterIndex регистрирует страницу с картой. Шаблоны должны быть загружены в роутер.
func (h *Handler) RegisterIndex(router gin.IRoutes) {
	router.GET("/", h.index)
}
