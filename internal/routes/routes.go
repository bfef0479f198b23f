package routes

import (
	"net/http"

	"fellowship_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты портала.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := ginRouter.Group("/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(v1)
		appHandlers.ApplicationHandler.RegisterRoutes(v1)
		appHandlers.StartupHandler.RegisterRoutes(v1)
		appHandlers.ExportHandler.RegisterRoutes(v1)
	}
}
