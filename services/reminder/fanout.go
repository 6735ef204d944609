package reminder

import (
	"context"
	"fmt"

	"careinsight/models"
)

// NewReminderMessage builds the push payload for a due dose.
func NewReminderMessage(due models.DoseDue, tokens []string) *models.ReminderMessage {
	p := due.Prescription
	doseTime := due.Time.String()

	return &models.ReminderMessage{
		UserID:         p.UserID,
		PrescriptionID: p.ID,
		DoseTime:       doseTime,
		Title:          models.ReminderTitle,
		Body:           fmt.Sprintf("%s - %s", p.Medication, p.Dosage),
		Data: map[string]string{
			"prescriptionId": p.ID,
			"medication":     p.Medication,
			"dosage":         p.Dosage,
			"time":           doseTime,
			"click_action":   models.ReminderClickAction,
		},
		Tokens: append([]string(nil), tokens...),
	}
}

// buildMessage resolves the owner's tokens. A missing profile or an empty
// token list yields nil, nil.
func (d *Dispatcher) buildMessage(ctx context.Context, due models.DoseDue) (*models.ReminderMessage, error) {
	profile, err := d.Users.GetByID(ctx, due.Prescription.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", due.Prescription.UserID, err)
	}
	if profile == nil || len(profile.NotificationTokens) == 0 {
		return nil, nil
	}
	return NewReminderMessage(due, profile.NotificationTokens), nil
}
