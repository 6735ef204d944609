// File: models/records.go
package models

import "time"

const (
	MedicationStatusTaken = "taken"
	ReminderStatusSnoozed = "snoozed"
)

// MedicationLog is an append-only record of a dose the user marked as taken.
type MedicationLog struct {
	ID             string    `bson:"id" json:"id"`
	PrescriptionID string    `bson:"prescriptionId" json:"prescriptionId"`
	UserID         string    `bson:"userId" json:"userId"`
	TakenAt        time.Time `bson:"takenAt" json:"takenAt"`
	Status         string    `bson:"status" json:"status"`
}

// Reminder is a user-requested follow-up reminder (currently only snoozes).
type Reminder struct {
	ID             string    `bson:"id" json:"id"`
	PrescriptionID string    `bson:"prescriptionId" json:"prescriptionId"`
	UserID         string    `bson:"userId" json:"userId"`
	ScheduledFor   time.Time `bson:"scheduledFor" json:"scheduledFor"`
	Status         string    `bson:"status" json:"status"`
}

// PrescriptionActionRequest is the body of the taken and snooze calls.
type PrescriptionActionRequest struct {
	PrescriptionID string `json:"prescriptionId" binding:"required"`
}
