package handlers

import (
	"PALS/middlewares"
	"PALS/services"
	"PALS/utils"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	service *services.RecordService
}

func NewRecordHandler(service *services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// CreatePrescription appends a new record for the patient code. The body
// is a flat map of clinical field names to values.
func (h *RecordHandler) CreatePrescription(c *gin.Context) {
	code := c.Param("code")

	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	record, err := h.service.Append(ctx, code, fields)
	if err != nil {
		if errors.Is(err, utils.ErrUnknownField) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
			return
		}
		middlewares.HttpError(c, "Failed to save prescription", 500, err)
		return
	}
	c.JSON(201, gin.H{"message": "Prescription saved", "prescription": record})
}

// UpdatePrescription amends an existing record in place. The amendment
// never changes the record's position for latest-record lookups.
func (h *RecordHandler) UpdatePrescription(c *gin.Context) {
	id := c.Param("id")

	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	record, err := h.service.Replace(ctx, id, fields)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Prescription not found"})
			return
		}
		if errors.Is(err, utils.ErrUnknownField) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
			return
		}
		middlewares.HttpError(c, "Failed to update prescription", 500, err)
		return
	}
	c.JSON(200, gin.H{"message": "Prescription updated", "updated": record})
}

// GetPrescriptions lists the patient's records, newest first.
func (h *RecordHandler) GetPrescriptions(c *gin.Context) {
	code := c.Param("code")

	ctx := c.Request.Context()
	records, err := h.service.History(ctx, code)
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch prescriptions", 500, err)
		return
	}
	c.JSON(200, records)
}

// Manage returns the latest record together with the visibility policy
// for the patient's own management view.
func (h *RecordHandler) Manage(c *gin.Context) {
	code := c.Param("code")

	ctx := c.Request.Context()
	view, err := h.service.Manage(ctx, code)
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch manage data", 500, err)
		return
	}
	c.JSON(200, view)
}
