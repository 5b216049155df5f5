package handlers

import (
	"PALS/middlewares"
	"PALS/models"
	"PALS/services"
	"PALS/utils"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// AuthHandler covers patient registration, login and password reset.
type AuthHandler struct {
	PatientService *services.PatientService
}

func NewAuthHandler(patientService *services.PatientService) *AuthHandler {
	return &AuthHandler{PatientService: patientService}
}

// Register creates a patient account and returns the assigned share code.
func (h *AuthHandler) Register(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	code, err := h.PatientService.Register(ctx, &patient)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
			return
		}
		middlewares.HttpError(c, "Registration failed", 500, err)
		return
	}

	c.JSON(201, gin.H{"message": "Registered successfully", "code": code})
}

// Login authenticates a patient and returns the profile plus tokens.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	patient, err := h.PatientService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(patient.Code, utils.RolePatient)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate tokens", 500, err)
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)

	c.JSON(200, gin.H{
		"message":      "Login successful",
		"patient":      patient,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// GetPatientByCode returns a patient's profile, credentials excluded.
func (h *AuthHandler) GetPatientByCode(c *gin.Context) {
	code := c.Param("code")

	ctx := c.Request.Context()
	patient, err := h.PatientService.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Patient not found"})
			return
		}
		middlewares.HttpError(c, "Failed to fetch patient", 500, err)
		return
	}
	c.JSON(200, patient)
}

// SendResetCode emails a password reset code to a registered patient.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, data.Email, code); err != nil {
		middlewares.HttpError(c, "Failed to set reset code", 500, err)
		return
	}
	if err := utils.SendResetCodeEmail(data.Email, code); err != nil {
		middlewares.HttpError(c, "Failed to send reset code email", 500, err)
		return
	}
	c.Status(200)
}

// ChangePassword verifies the emailed reset code and stores the new
// password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		ResetCode   string `json:"resetCode"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	storedCode, err := utils.GetResetCode(ctx, data.Email)
	if err != nil || storedCode == nil || *storedCode != data.ResetCode {
		c.JSON(400, gin.H{"error": "Invalid reset code"})
		return
	}

	if err := h.PatientService.ResetPassword(ctx, data.Email, data.NewPassword); err != nil {
		if errors.Is(err, utils.ErrValidation) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
			return
		}
		middlewares.HttpError(c, "Failed to change password", 500, err)
		return
	}

	if err := utils.DeleteResetCode(ctx, data.Email); err != nil {
		middlewares.HttpError(c, "Failed to clear reset code", 500, err)
		return
	}
	c.Status(200)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := c.DefaultQuery("refreshToken", "")
	if token == "" {
		if cookie, err := c.Cookie("refreshToken"); err == nil {
			token = cookie
		}
	}
	if token == "" {
		c.JSON(401, gin.H{"error": "Missing refresh token"})
		return
	}

	claims, err := utils.ValidateToken(token, utils.RolePatient, utils.RoleDoctor)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid refresh token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate token", 500, err)
		return
	}
	c.JSON(200, gin.H{"accessToken": accessToken})
}

// Logoff clears the auth cookies.
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(200)
}
