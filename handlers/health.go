package handlers

import (
	"net/http"

	"careinsight/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency snapshot. Degraded dependencies return 503.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "dependencies": status})
}
