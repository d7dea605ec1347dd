package routes

import (
	"time"

	"sorveteria-backend/config"
	"sorveteria-backend/handlers"
	"sorveteria-backend/middleware"
	"sorveteria-backend/services"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint. The public surface is the profile read,
// the visitor review submission and the display page; everything that
// mutates content requires authentication, and the maintenance endpoints
// take the cron secret.
func SetupRoutes(r *gin.Engine, svc *services.Service, auth *handlers.AuthHandler) {
	sorveteriaHandler := &handlers.SorveteriaHandler{Service: svc}
	fotoHandler := &handlers.FotoHandler{Service: svc}
	depoimentoHandler := &handlers.DepoimentoHandler{Service: svc}
	promocaoHandler := &handlers.PromocaoHandler{Service: svc}
	maintenanceHandler := &handlers.MaintenanceHandler{Service: svc}
	pageHandler := &handlers.PageHandler{Service: svc}

	depoimentoLimiter := middleware.NewRateLimiter(5, time.Minute)

	api := r.Group("/api")
	{
		api.POST("/auth/login", auth.Login)

		api.GET("/sorveteria", sorveteriaHandler.GetSorveteria)
		api.POST("/sorveteria/depoimento", depoimentoLimiter.Middleware(), depoimentoHandler.AddDepoimento)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/sorveteria", sorveteriaHandler.CreateOrUpdateSorveteria)
		protected.PATCH("/sorveteria", sorveteriaHandler.UpdateSorveteria)

		protected.POST("/sorveteria/foto", fotoHandler.AddFoto)
		protected.DELETE("/sorveteria/foto/:id", fotoHandler.RemoveFoto)

		protected.PATCH("/sorveteria/depoimento/:id", depoimentoHandler.UpdateDepoimentoStatus)

		protected.POST("/sorveteria/promocao", promocaoHandler.AddPromocao)
	}

	// Maintenance routes, triggered by an external scheduler
	cron := api.Group("/sorveteria/cron")
	cron.Use(middleware.CronMiddleware(config.GetEnv("CRON_SECRET", "")))
	{
		cron.POST("/remove-promocoes", maintenanceHandler.RemoveExpiredPromocoes)
		cron.POST("/update-status", maintenanceHandler.UpdateStatus)
	}

	// Public display page
	r.GET("/", pageHandler.Show)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
