package routes

import (
	"time"

	"tripcraft/config"
	"tripcraft/handlers"
	"tripcraft/middleware"
	"tripcraft/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		// Protected routes (Require Authentication)
		me := api.Group("/me")
		me.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, hb.AuthCache))
		me.GET("", hb.User.GetMeHandler)
		me.PATCH("", hb.User.UpdateMeHandler)
		me.PUT("/password", hb.User.UpdatePasswordHandler)
		me.DELETE("/session", hb.User.LogoutHandler)
	}
}

// RegisterAIRoutes registers itinerary generation endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("/generate", hb.Itinerary.GenerateHandler)
		api.GET("/generations", hb.Itinerary.GenerationsHandler)
	}
}

// RegisterTripRoutes registers trip, itinerary builder, budget and cover endpoints.
func RegisterTripRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/trips")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("", hb.Trip.CreateTripHandler)
		api.GET("", hb.Trip.ListTripsHandler)
		api.GET("/fetch", hb.Trip.ListTripsHandler)
		api.GET("/:id", hb.Trip.GetTripHandler)
		api.PATCH("/:id", hb.Trip.UpdateTripHandler)
		api.DELETE("/:id", hb.Trip.DeleteTripHandler)

		api.PUT("/:id/itinerary", hb.Trip.SaveItineraryHandler)
		api.POST("/:id/stops", hb.Trip.AddStopHandler)
		api.PUT("/:id/stops/order", hb.Trip.ReorderStopsHandler)
		api.DELETE("/:id/stops/:stopId", hb.Trip.RemoveStopHandler)

		api.GET("/:id/budget", hb.Trip.BudgetHandler)
		api.POST("/:id/cover", hb.Trip.UploadCoverHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.HealthCheckHandler)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig(config.AppConfig.CORSOrigins)))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterHealthRoute(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterTripRoutes(r, hb)
}
