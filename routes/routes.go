package routes

import (
	"PALS/cache"
	"PALS/config"
	"PALS/controllers"
	"PALS/handlers"
	"PALS/middlewares"
	"PALS/narrative"
	"PALS/repositories"
	"PALS/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://pals-health.example.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	patientRepo := repositories.NewPatientRepository(db, cache)
	doctorRepo := repositories.NewDoctorRepository(db, cache)
	recordRepo := repositories.NewRecordRepository(db, cache)
	visibilityRepo := repositories.NewVisibilityRepository(db, cache)
	visitRepo := repositories.NewVisitHistoryRepository(db)

	// Narrative service is optional; a blank URL means static
	// recommendations only.
	var narrator narrative.Client
	if config.GetNarrativeURL() != "" {
		narrator = narrative.NewHTTPClient(config.GetNarrativeURL(), config.GetNarrativeKey())
	}

	// Initialize services
	patientService := services.NewPatientService(patientRepo)
	doctorService := services.NewDoctorService(doctorRepo)
	recordService := services.NewRecordService(recordRepo, visibilityRepo)
	visibilityService := services.NewVisibilityService(visibilityRepo)
	visitHistoryService := services.NewVisitHistoryService(visitRepo)
	disclosureService := services.NewDisclosureService(patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo)
	emergencyService := services.NewEmergencyService(patientRepo, narrator)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(patientService)
	doctorHandler := handlers.NewDoctorHandler(doctorService, disclosureService)
	recordHandler := handlers.NewRecordHandler(recordService)
	visibilityHandler := handlers.NewVisibilityHandler(visibilityService)
	historyHandler := handlers.NewHistoryHandler(visitHistoryService)
	emergencyHandler := handlers.NewEmergencyHandler(emergencyService)

	// Register routes
	controllers.SetupPatientRoutes(
		router,
		recordHandler,
		visibilityHandler,
		doctorHandler,
		historyHandler,
		emergencyHandler,
	)

	authController := controllers.NewAuthController(authHandler, doctorHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
