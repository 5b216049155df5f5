package handlers

import (
	"PALS/middlewares"
	"PALS/services"
	"PALS/utils"
	"errors"

	"github.com/gin-gonic/gin"
)

type EmergencyHandler struct {
	service *services.EmergencyService
}

func NewEmergencyHandler(service *services.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{service: service}
}

// GetEmergencyData surfaces the patient's critical data and a
// recommendation for the selected category.
func (h *EmergencyHandler) GetEmergencyData(c *gin.Context) {
	code := c.Param("code")
	category := c.Query("category")

	ctx := c.Request.Context()
	data, err := h.service.Access(ctx, code, category)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Patient not found"})
			return
		}
		middlewares.HttpError(c, "Failed to fetch emergency data", 500, err)
		return
	}
	c.JSON(200, data)
}
