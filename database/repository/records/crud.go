package recordsRepo

import (
	"context"
	"time"

	"careinsight/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMedicationLog appends a log entry stamped with the server time.
func (r *mongoRecordRepo) CreateMedicationLog(ctx context.Context, log models.MedicationLog) (string, error) {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	log.TakenAt = time.Now().UTC()

	if _, err := r.logs.InsertOne(ctx, log); err != nil {
		return "", err
	}
	return log.ID, nil
}

// CreateReminder inserts a reminder record and returns its ID.
func (r *mongoRecordRepo) CreateReminder(ctx context.Context, reminder models.Reminder) (string, error) {
	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}

	if _, err := r.reminders.InsertOne(ctx, reminder); err != nil {
		return "", err
	}
	return reminder.ID, nil
}

// ListMedicationLogs returns the user's logs, most recent first.
func (r *mongoRecordRepo) ListMedicationLogs(ctx context.Context, userID string) ([]models.MedicationLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "takenAt", Value: -1}}).SetLimit(200)
	cursor, err := r.logs.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.MedicationLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
