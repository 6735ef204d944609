package handlers

import (
	"errors"
	"net/http"
	"time"

	"careinsight/models"
	"careinsight/services/reminder"
	"careinsight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReminderHandler struct {
	Service reminder.ReminderService
}

func NewReminderHandler(service reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: service}
}

// MedicationTakenHandler records that the caller took a dose now.
func (h *ReminderHandler) MedicationTakenHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "User must be logged in")
		return
	}

	var req models.PrescriptionActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "prescriptionId is required")
		return
	}

	if err := h.Service.AcknowledgeTaken(c.Request.Context(), userID, req.PrescriptionID); err != nil {
		h.writeActionError(c, err, "Failed to log medication")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Medication logged successfully"})
}

// SnoozeReminderHandler schedules a snoozed reminder and returns when it is due.
func (h *ReminderHandler) SnoozeReminderHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "User must be logged in")
		return
	}

	var req models.PrescriptionActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "prescriptionId is required")
		return
	}

	next, err := h.Service.Snooze(c.Request.Context(), userID, req.PrescriptionID)
	if err != nil {
		h.writeActionError(c, err, "Failed to snooze reminder")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "nextReminder": next.UTC().Format(time.RFC3339)})
}

func (h *ReminderHandler) MedicationLogsHandler(c *gin.Context) {
	logs, err := h.Service.MedicationLogs(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeActionError(c, err, "Failed to load medication logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// writeActionError hides store details behind a generic message.
func (h *ReminderHandler) writeActionError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, reminder.ErrUnauthenticated):
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "User must be logged in")
	case errors.Is(err, reminder.ErrMissingPrescription):
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "prescriptionId is required")
	default:
		getLogger(c).Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", message)
	}
}
