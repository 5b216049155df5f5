package handlers

import (
	"PALS/middlewares"
	"PALS/services"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	service *services.VisitHistoryService
}

func NewHistoryHandler(service *services.VisitHistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// GetVisitHistory lists who viewed the patient's records, newest first.
func (h *HistoryHandler) GetVisitHistory(c *gin.Context) {
	code := c.Param("code")

	ctx := c.Request.Context()
	history, err := h.service.HistoryFor(ctx, code)
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch patient history", 500, err)
		return
	}
	c.JSON(200, history)
}
