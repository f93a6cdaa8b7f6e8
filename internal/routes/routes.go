package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medical-backend-server/internal/config"
	"medical-backend-server/internal/handlers"
	"medical-backend-server/internal/middleware"
)

// SetupRoutes configures the application routes. Paths and casing are part
// of the API contract and must not gain a version prefix.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)

	// Liveness
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "Medical backend running"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	// Public routes (no authentication required)
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.RefreshToken)
	}

	// Authenticated routes
	private := router.Group("")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		private.POST("/auth/logout", authHandler.Logout)

		private.GET("/users/me", userHandler.Me)

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.List)
			appointmentRoutes.POST("", appointmentHandler.Create)
			appointmentRoutes.DELETE("/:id", appointmentHandler.Delete)
		}
	}
}
