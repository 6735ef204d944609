// File: careinsight/handlers/bundle.go
package handlers

import (
	"careinsight/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Verifier utils.TokenVerifier

	// Medication reminder actions
	MedicationTakenHandler gin.HandlerFunc
	MedicationLogsHandler  gin.HandlerFunc
	SnoozeReminderHandler  gin.HandlerFunc

	// Prescription endpoints
	CreatePrescriptionHandler gin.HandlerFunc
	ListPrescriptionsHandler  gin.HandlerFunc
	GetPrescriptionHandler    gin.HandlerFunc
	DeletePrescriptionHandler gin.HandlerFunc

	// User device endpoints
	RegisterNotificationTokenHandler gin.HandlerFunc
	GetNotificationProfileHandler    gin.HandlerFunc

	// Wellness endpoints
	SaveWellnessProfileHandler gin.HandlerFunc
	GetWellnessProfileHandler  gin.HandlerFunc

	// AI endpoints
	AISymptomsHandler          gin.HandlerFunc
	AIChatHandler              gin.HandlerFunc
	AIResetChatHandler         gin.HandlerFunc
	AIPrescriptionImageHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
