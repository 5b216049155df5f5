package controllers

import (
	"PALS/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPatientRoutes registers the record, visibility, disclosure, visit
// history and emergency routes.
func SetupPatientRoutes(router *gin.Engine, recordHandler *handlers.RecordHandler, visibilityHandler *handlers.VisibilityHandler, doctorHandler *handlers.DoctorHandler, historyHandler *handlers.HistoryHandler, emergencyHandler *handlers.EmergencyHandler) {
	// Prescription records
	router.POST("/prescription/:code", recordHandler.CreatePrescription)
	router.PUT("/prescription/:code/:id", recordHandler.UpdatePrescription)
	router.GET("/prescription/:code", recordHandler.GetPrescriptions)
	router.GET("/manage/:code", recordHandler.Manage)

	// Field visibility
	router.GET("/visibility/:code", visibilityHandler.GetVisibility)
	router.PUT("/visibility/:code", visibilityHandler.UpdateVisibility)

	// Doctor-side disclosure
	router.GET("/doctor/patient/:code", doctorHandler.ViewPatient)

	// Patient-visible visit history
	router.GET("/patient/history/:code", historyHandler.GetVisitHistory)

	// Emergency access
	router.GET("/emergency/:code", emergencyHandler.GetEmergencyData)
}
