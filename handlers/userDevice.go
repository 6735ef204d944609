package handlers

import (
	"errors"
	"net/http"

	"careinsight/models"
	"careinsight/services/user"
	"careinsight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserDeviceHandler struct {
	UserService user.UserService
}

func NewUserDeviceHandler(userService user.UserService) *UserDeviceHandler {
	return &UserDeviceHandler{UserService: userService}
}

// RegisterNotificationTokenHandler adds a push token to the caller's profile.
func (h *UserDeviceHandler) RegisterNotificationTokenHandler(c *gin.Context) {
	var reg models.TokenRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid-argument", "token is required")
		return
	}

	if err := h.UserService.RegisterNotificationToken(c.Request.Context(), currentUserID(c), reg); err != nil {
		if errors.Is(err, user.ErrEmptyToken) {
			utils.JSONError(c, http.StatusBadRequest, "invalid-argument", err.Error())
			return
		}
		getLogger(c).Error("Failed to register notification token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to register notification token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *UserDeviceHandler) GetNotificationProfileHandler(c *gin.Context) {
	profile, err := h.UserService.GetNotificationProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		getLogger(c).Error("Failed to load notification profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to load notification profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
