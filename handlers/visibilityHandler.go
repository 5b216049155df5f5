package handlers

import (
	"PALS/middlewares"
	"PALS/services"
	"PALS/utils"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

type VisibilityHandler struct {
	service *services.VisibilityService
}

func NewVisibilityHandler(service *services.VisibilityService) *VisibilityHandler {
	return &VisibilityHandler{service: service}
}

// GetVisibility returns the patient's policy, creating all-public
// defaults on first read.
func (h *VisibilityHandler) GetVisibility(c *gin.Context) {
	code := c.Param("code")

	ctx := c.Request.Context()
	policy, err := h.service.GetPolicy(ctx, code)
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch visibility", 500, err)
		return
	}
	c.JSON(200, policy)
}

// UpdateVisibility sets one field's level. An empty value resets the
// field to "public".
func (h *VisibilityHandler) UpdateVisibility(c *gin.Context) {
	code := c.Param("code")

	var data struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	policy, err := h.service.SetField(ctx, code, data.Field, data.Value)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) || errors.Is(err, utils.ErrUnknownField) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
			return
		}
		middlewares.HttpError(c, "Failed to update visibility", 500, err)
		return
	}
	c.JSON(200, policy)
}
