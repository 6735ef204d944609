package handlers

import (
	"errors"
	"net/http"

	"careinsight/models"
	"careinsight/services/wellness"
	"careinsight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WellnessHandler struct {
	Service wellness.WellnessService
}

func NewWellnessHandler(service wellness.WellnessService) *WellnessHandler {
	return &WellnessHandler{Service: service}
}

// SaveProfileHandler stores the caller's body metrics and returns the derived summary.
func (h *WellnessHandler) SaveProfileHandler(c *gin.Context) {
	var in models.WellnessProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "height, weight and age must be positive")
		return
	}

	summary, err := h.Service.SaveProfile(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		if errors.Is(err, wellness.ErrUnauthenticated) {
			utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", err.Error())
			return
		}
		getLogger(c).Error("Failed to save wellness profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to save wellness profile")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *WellnessHandler) GetProfileHandler(c *gin.Context) {
	summary, err := h.Service.GetSummary(c.Request.Context(), currentUserID(c))
	switch {
	case errors.Is(err, wellness.ErrNoProfile):
		utils.JSONError(c, http.StatusNotFound, "not-found", err.Error())
		return
	case errors.Is(err, wellness.ErrUnauthenticated):
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", err.Error())
		return
	case err != nil:
		getLogger(c).Error("Failed to load wellness profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to load wellness profile")
		return
	}
	c.JSON(http.StatusOK, summary)
}
