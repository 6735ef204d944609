package recordsRepo

import (
	"context"

	"careinsight/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RecordsRepository stores append-only medication logs and reminder records.
type RecordsRepository interface {
	CreateMedicationLog(ctx context.Context, log models.MedicationLog) (string, error)
	CreateReminder(ctx context.Context, reminder models.Reminder) (string, error)
	ListMedicationLogs(ctx context.Context, userID string) ([]models.MedicationLog, error)
}

type mongoRecordRepo struct {
	logs      *mongo.Collection
	reminders *mongo.Collection
}

// NewMongoRecordRepo returns a new RecordsRepository instance using MongoDB.
func NewMongoRecordRepo(db *mongo.Database) RecordsRepository {
	return &mongoRecordRepo{
		logs:      db.Collection("medicationLogs"),
		reminders: db.Collection("reminders"),
	}
}
