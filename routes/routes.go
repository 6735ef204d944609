package routes

import (
	"time"

	"careinsight/handlers"
	"careinsight/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMedicationRoutes registers the reminder action endpoints.
func RegisterMedicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	meds := r.Group("/api/medications")
	{
		meds.Use(middleware.AuthMiddleware(hb.Verifier))
		meds.POST("/taken", hb.MedicationTakenHandler)
		meds.GET("/logs", hb.MedicationLogsHandler)
	}

	reminders := r.Group("/api/reminders")
	{
		reminders.Use(middleware.AuthMiddleware(hb.Verifier))
		reminders.POST("/snooze", hb.SnoozeReminderHandler)
	}
}

// RegisterPrescriptionRoutes registers prescription management endpoints.
func RegisterPrescriptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/prescriptions")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.POST("", hb.CreatePrescriptionHandler)
		api.GET("", hb.ListPrescriptionsHandler)
		api.GET("/:id", hb.GetPrescriptionHandler)
		api.DELETE("/:id", hb.DeletePrescriptionHandler)
	}
}

// RegisterUserRoutes registers user device endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.POST("/notification-tokens", hb.RegisterNotificationTokenHandler)
		api.GET("/notification-profile", hb.GetNotificationProfileHandler)
	}
}

// RegisterWellnessRoutes registers the body-metrics profile endpoints.
func RegisterWellnessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wellness")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.PUT("/profile", hb.SaveWellnessProfileHandler)
		api.GET("/profile", hb.GetWellnessProfileHandler)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.POST("/symptoms", hb.AISymptomsHandler)
		api.POST("/chat", hb.AIChatHandler)
		api.DELETE("/chat", hb.AIResetChatHandler)
		api.POST("/prescription-image", hb.AIPrescriptionImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMedicationRoutes(r, hb)
	RegisterPrescriptionRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterWellnessRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
