// File: careinsight/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careinsight/config"
	"careinsight/cron"
	"careinsight/database"
	prescriptionRepo "careinsight/database/repository/prescription"
	recordsRepo "careinsight/database/repository/records"
	userRepoPkg "careinsight/database/repository/user"
	wellnessRepo "careinsight/database/repository/wellness"
	"careinsight/handlers"
	"careinsight/middleware"
	"careinsight/routes"
	ai "careinsight/services/intelligence"
	"careinsight/services/notification"
	"careinsight/services/prescription"
	"careinsight/services/reminder"
	"careinsight/services/user"
	"careinsight/services/wellness"
	"careinsight/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(rootCtx, utils.GetCacheClient(), database.MongoClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	db := database.DB()
	prescriptions := prescriptionRepo.NewMongoPrescriptionRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)
	records := recordsRepo.NewMongoRecordRepo(db)
	wellnessProfiles := wellnessRepo.NewMongoWellnessRepo(db)

	// services.
	userService := user.NewDefaultUserService(users)
	prescriptionService := prescription.NewDefaultPrescriptionService(prescriptions)
	reminderService := reminder.NewDefaultReminderService(records, config.SnoozeOffset())
	wellnessService := wellness.NewDefaultWellnessService(wellnessProfiles)

	notificationService, err := notification.NewDefaultNotificationService(utils.FCMClient, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize notification service", zap.Error(err))
	}

	var ledger reminder.Ledger
	if config.AppConfig.ReminderDedup {
		ledger = reminder.ConnectLedger(rootCtx, utils.GetCacheClient(), logger)
	}
	dispatcher := reminder.NewDispatcher(
		prescriptions,
		users,
		notificationService,
		ledger,
		config.AppConfig.ReminderMinuteBucket,
		logger,
	)

	gemini, err := ai.NewGeminiClient(rootCtx,
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiTextModel,
		config.AppConfig.GeminiVisionModel,
	)
	if err != nil {
		logger.Fatal("main: failed to initialize Gemini client", zap.Error(err))
	}
	defer gemini.Close()
	ctxStore := ai.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	aiSvc := ai.NewDefaultAIService(gemini, ctxStore, logger)

	// handlers.
	reminderHandler := handlers.NewReminderHandler(reminderService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	userDeviceHandler := handlers.NewUserDeviceHandler(userService)
	aiHandler := handlers.NewAIHandler(aiSvc)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)

	handlerBundle := &handlers.HandlerBundle{
		Verifier: newTokenVerifier(logger),

		MedicationTakenHandler: reminderHandler.MedicationTakenHandler,
		MedicationLogsHandler:  reminderHandler.MedicationLogsHandler,
		SnoozeReminderHandler:  reminderHandler.SnoozeReminderHandler,

		CreatePrescriptionHandler: prescriptionHandler.CreatePrescriptionHandler,
		ListPrescriptionsHandler:  prescriptionHandler.ListPrescriptionsHandler,
		GetPrescriptionHandler:    prescriptionHandler.GetPrescriptionHandler,
		DeletePrescriptionHandler: prescriptionHandler.DeletePrescriptionHandler,

		RegisterNotificationTokenHandler: userDeviceHandler.RegisterNotificationTokenHandler,
		GetNotificationProfileHandler:    userDeviceHandler.GetNotificationProfileHandler,

		SaveWellnessProfileHandler: wellnessHandler.SaveProfileHandler,
		GetWellnessProfileHandler:  wellnessHandler.GetProfileHandler,

		AISymptomsHandler:          aiHandler.SymptomsHandler,
		AIChatHandler:              aiHandler.ChatHandler,
		AIResetChatHandler:         aiHandler.ResetChatHandler,
		AIPrescriptionImageHandler: aiHandler.PrescriptionImageHandler,

		HealthHandler: handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder trigger.
	trigger := newReminderTrigger(dispatcher, logger)
	if trigger != nil {
		if err := trigger.Start(); err != nil {
			logger.Fatal("main: failed to start reminder trigger", zap.Error(err))
		}
	}

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if trigger != nil {
		trigger.Shutdown()
	}
	stop()
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to close MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func newTokenVerifier(logger *zap.Logger) utils.TokenVerifier {
	if config.AppConfig.AuthProvider == "firebase" {
		logger.Info("main: authenticating with Firebase ID tokens")
		return &utils.FirebaseVerifier{Client: utils.FirebaseAuth}
	}
	if config.AppConfig.JWTSecret == "" {
		logger.Fatal("main: JWT_SECRET is required when AUTH_PROVIDER=jwt")
	}
	return utils.NewJWTVerifier(config.AppConfig.JWTSecret)
}

// newReminderTrigger returns nil when cycles are fired externally (REMINDER_TRIGGER=none).
func newReminderTrigger(dispatcher *reminder.Dispatcher, logger *zap.Logger) cron.Trigger {
	cfg := config.AppConfig
	switch cfg.ReminderTrigger {
	case "none":
		logger.Info("main: in-process reminder trigger disabled")
		return nil
	case "cron":
		ticker, err := cron.NewReminderTicker(dispatcher, cfg.ReminderSchedule, cfg.ReminderCycleTimeout, logger)
		if err != nil {
			logger.Fatal("main: failed to create reminder ticker", zap.Error(err))
		}
		return ticker
	default:
		return cron.NewReminderWorker(asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}, dispatcher, cfg.ReminderSchedule, cfg.ReminderCycleTimeout, logger)
	}
}
