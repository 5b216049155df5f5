package controllers

import (
	"PALS/handlers"
	"PALS/middlewares"
	"PALS/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthHandler   *handlers.AuthHandler
	DoctorHandler *handlers.DoctorHandler
}

// NewAuthController creates a new AuthController for patient and doctor
// account routes.
func NewAuthController(authHandler *handlers.AuthHandler, doctorHandler *handlers.DoctorHandler) *AuthController {
	return &AuthController{
		AuthHandler:   authHandler,
		DoctorHandler: doctorHandler,
	}
}

// RegisterRoutes initializes all account routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: No authentication required
	router.POST("/register", ac.AuthHandler.Register)
	router.POST("/login", ac.AuthHandler.Login)
	router.GET("/user/:code", ac.AuthHandler.GetPatientByCode)
	router.POST("/send-reset-code", ac.AuthHandler.SendResetCode)
	router.POST("/change-password", ac.AuthHandler.ChangePassword)
	router.POST("/refresh", ac.AuthHandler.Refresh)

	router.POST("/doctor/register", ac.DoctorHandler.Register)
	router.POST("/doctor/login", ac.DoctorHandler.Login)

	// Protected routes: Requires a valid token
	authGroup := router.Group("/auth").Use(middlewares.TokenAuthMiddleware())
	{
		authGroup.POST("/logoff", ac.AuthHandler.Logoff)
	}

	// Doctor-only routes
	doctorGroup := router.Group("/auth/doctor").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(utils.RoleDoctor),
	)
	{
		doctorGroup.GET("/profile/:id", ac.DoctorHandler.GetProfile)
	}
}
