package routes

import (
	"time"

	"servigo/handlers"
	"servigo/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers listing browse and management endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.CatalogHandler.Browse)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.CatalogHandler.CreateListing)
		api.POST("/refresh", hb.CatalogHandler.Refresh)
		api.DELETE("/:id", hb.CatalogHandler.DeactivateListing)
		api.POST("/:id/images", hb.StorageHandler.UploadListingImage)
	}
}

// RegisterProviderRoutes registers provider detail and review endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("/:id", hb.ProviderHandler.GetDetail)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware())
		api.POST("/:id/reviews", hb.ProviderHandler.AddReview)
	}
}

// RegisterLocaleRoutes registers language state and translation endpoints.
func RegisterLocaleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/locale")
	{
		api.GET("", hb.LocaleHandler.GetState)
		api.PUT("", hb.LocaleHandler.SetLanguage)
		api.GET("/translate/:key", hb.LocaleHandler.Translate)
	}
}

// RegisterDirectoryRoutes registers static directory endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/categories", hb.CatalogHandler.Categories)
	r.GET("/api/states", handlers.GetStates)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterLocaleRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterHealthRoute(r)
}
