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

// DoctorHandler covers doctor registration, login and the patient-view
// endpoint that drives disclosure.
type DoctorHandler struct {
	DoctorService     *services.DoctorService
	DisclosureService *services.DisclosureService
}

func NewDoctorHandler(doctorService *services.DoctorService, disclosureService *services.DisclosureService) *DoctorHandler {
	return &DoctorHandler{
		DoctorService:     doctorService,
		DisclosureService: disclosureService,
	}
}

func (h *DoctorHandler) Register(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if err := h.DoctorService.Register(ctx, &doctor); err != nil {
		if errors.Is(err, utils.ErrValidation) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
			return
		}
		middlewares.HttpError(c, "Doctor registration failed", 500, err)
		return
	}
	c.JSON(201, gin.H{"message": "Doctor registered successfully", "id": doctor.ID})
}

func (h *DoctorHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	doctor, err := h.DoctorService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(doctor.ID, utils.RoleDoctor)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate tokens", 500, err)
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)

	c.JSON(200, gin.H{
		"message":      "Login successful",
		"doctor":       doctor,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// GetProfile returns a doctor's profile, credentials excluded.
func (h *DoctorHandler) GetProfile(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	doctor, err := h.DoctorService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Doctor not found"})
			return
		}
		middlewares.HttpError(c, "Failed to fetch doctor", 500, err)
		return
	}
	c.JSON(200, doctor)
}

// ViewPatient discloses a patient's permitted fields to a doctor. The
// optional doctorId query attributes the view in the patient's visit
// history.
func (h *DoctorHandler) ViewPatient(c *gin.Context) {
	code := c.Param("code")
	doctorID := c.Query("doctorId")

	ctx := c.Request.Context()
	result, err := h.DisclosureService.Disclose(ctx, code, doctorID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Patient not found"})
			return
		}
		middlewares.HttpError(c, "Failed to fetch patient data", 500, err)
		return
	}
	c.JSON(200, result)
}
