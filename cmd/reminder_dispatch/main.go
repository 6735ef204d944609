// Command reminder_dispatch runs exactly one medication reminder cycle and exits.
// It is meant for hosts that fire jobs from an external scheduler.
package main

import (
	"context"
	"time"

	"careinsight/config"
	"careinsight/database"
	prescriptionRepo "careinsight/database/repository/prescription"
	userRepoPkg "careinsight/database/repository/user"
	"careinsight/services/notification"
	"careinsight/services/reminder"
	"careinsight/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.FirebaseInit()

	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.ReminderCycleTimeout)
	defer cancel()
	defer database.CloseDB(context.Background())

	sender, err := notification.NewDefaultNotificationService(utils.FCMClient, logger)
	if err != nil {
		logger.Fatal("reminder_dispatch: failed to initialize notification service", zap.Error(err))
	}

	var ledger reminder.Ledger
	if config.AppConfig.ReminderDedup {
		cache := utils.NewCacheClient()
		defer cache.Close()
		ledger = reminder.ConnectLedger(ctx, cache, logger)
	}

	db := database.DB()
	dispatcher := reminder.NewDispatcher(
		prescriptionRepo.NewMongoPrescriptionRepo(db),
		userRepoPkg.NewMongoUserRepo(db),
		sender,
		ledger,
		config.AppConfig.ReminderMinuteBucket,
		logger,
	)

	report := dispatcher.RunCycle(ctx, time.Now().UTC())
	logger.Info("reminder_dispatch: cycle finished",
		zap.Int("due", report.Due),
		zap.Int("messages", report.Messages),
		zap.Int("sent", report.Sent),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Int("pruned", report.Pruned),
		zap.Duration("duration", report.Duration),
	)
}
