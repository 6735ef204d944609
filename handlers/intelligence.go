package handlers

import (
	"errors"
	"net/http"

	"careinsight/models"
	ai "careinsight/services/intelligence"
	"careinsight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AIHandler struct {
	Service ai.AIService
}

func NewAIHandler(service ai.AIService) *AIHandler {
	return &AIHandler{Service: service}
}

func (h *AIHandler) SymptomsHandler(c *gin.Context) {
	var req models.SymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "symptoms are required")
		return
	}

	analysis, err := h.Service.AnalyzeSymptoms(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Error("Symptom analysis failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to analyze symptoms")
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (h *AIHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "message is required")
		return
	}

	reply, err := h.Service.Chat(c.Request.Context(), currentUserID(c), req.Message)
	if err != nil {
		getLogger(c).Error("AI chat failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to process message")
		return
	}
	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}

// ResetChatHandler forgets the caller's conversation history.
func (h *AIHandler) ResetChatHandler(c *gin.Context) {
	if err := h.Service.ResetChat(c.Request.Context(), currentUserID(c)); err != nil {
		getLogger(c).Error("AI chat reset failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to reset conversation")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AIHandler) PrescriptionImageHandler(c *gin.Context) {
	var req models.PrescriptionImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "imageUrl is required")
		return
	}

	result, err := h.Service.AnalyzePrescriptionImage(c.Request.Context(), req.ImageURL)
	if err != nil {
		if errors.Is(err, ai.ErrUnsupportedImage) {
			utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "URL must point to a jpg, jpeg, png, bmp or tiff image")
			return
		}
		getLogger(c).Error("Prescription image analysis failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to analyze prescription image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
