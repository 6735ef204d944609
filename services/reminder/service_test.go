package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"careinsight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcknowledgeTaken_RequiresCaller(t *testing.T) {
	records := &fakeRecords{}
	svc := NewDefaultReminderService(records, 15*time.Minute)

	err := svc.AcknowledgeTaken(context.Background(), "", "p1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, records.logs)
}

func TestAcknowledgeTaken_AppendsEveryCall(t *testing.T) {
	records := &fakeRecords{}
	svc := NewDefaultReminderService(records, 15*time.Minute)

	require.NoError(t, svc.AcknowledgeTaken(context.Background(), "u1", "p1"))
	require.NoError(t, svc.AcknowledgeTaken(context.Background(), "u1", "p1"))

	require.Len(t, records.logs, 2)
	assert.Equal(t, models.MedicationStatusTaken, records.logs[0].Status)
	assert.Equal(t, "u1", records.logs[0].UserID)
	assert.Equal(t, "p1", records.logs[0].PrescriptionID)
}

func TestAcknowledgeTaken_WrapsStoreError(t *testing.T) {
	storeErr := errors.New("write failed")
	svc := NewDefaultReminderService(&fakeRecords{err: storeErr}, 15*time.Minute)

	err := svc.AcknowledgeTaken(context.Background(), "u1", "p1")
	assert.ErrorIs(t, err, storeErr)
}

func TestSnooze_AddsFixedOffset(t *testing.T) {
	records := &fakeRecords{}
	svc := NewDefaultReminderService(records, 15*time.Minute)
	svc.Now = func() time.Time { return time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC) }

	next, err := svc.Snooze(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T10:15:00Z", next.Format(time.RFC3339))

	require.Len(t, records.reminders, 1)
	assert.Equal(t, models.ReminderStatusSnoozed, records.reminders[0].Status)
	assert.True(t, records.reminders[0].ScheduledFor.Equal(next))
}

func TestSnooze_RequiresCaller(t *testing.T) {
	records := &fakeRecords{}
	svc := NewDefaultReminderService(records, 15*time.Minute)

	_, err := svc.Snooze(context.Background(), "", "p1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, records.reminders)
}
