package handlers

import (
	"errors"
	"net/http"

	"careinsight/models"
	"careinsight/services/prescription"
	"careinsight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PrescriptionHandler struct {
	Service prescription.PrescriptionService
}

func NewPrescriptionHandler(service prescription.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{Service: service}
}

func (h *PrescriptionHandler) CreatePrescriptionHandler(c *gin.Context) {
	var input models.PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "Invalid input: "+err.Error())
		return
	}

	p, err := h.Service.CreatePrescription(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		h.writeError(c, err, "Failed to create prescription")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PrescriptionHandler) ListPrescriptionsHandler(c *gin.Context) {
	ps, err := h.Service.ListPrescriptions(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeError(c, err, "Failed to load prescriptions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescriptions": ps})
}

func (h *PrescriptionHandler) GetPrescriptionHandler(c *gin.Context) {
	p, err := h.Service.GetPrescription(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load prescription")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PrescriptionHandler) DeletePrescriptionHandler(c *gin.Context) {
	if err := h.Service.DeletePrescription(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		h.writeError(c, err, "Failed to delete prescription")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PrescriptionHandler) writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, prescription.ErrInvalidPrescription):
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", err.Error())
	case errors.Is(err, prescription.ErrPrescriptionNotFound):
		utils.JSONError(c, http.StatusNotFound, "not-found", "Prescription not found")
	default:
		getLogger(c).Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", message)
	}
}
