package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"careinsight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDispatcher(ps []models.Prescription, users *fakeUsers, sender *fakeSender, ledger Ledger) *Dispatcher {
	d := NewDispatcher(&fakePrescriptions{items: ps}, users, sender, nil, 1, zap.NewNop())
	if ledger != nil {
		d.Ledger = ledger
	}
	return d
}

func TestRunCycle_SendsOneNotificationAtDoseTime(t *testing.T) {
	users := newFakeUsers(&models.NotificationProfile{ID: "u1", NotificationTokens: []string{"t1"}})
	sender := &fakeSender{}
	d := newTestDispatcher([]models.Prescription{morningPrescription()}, users, sender, nil)

	report := d.RunCycle(context.Background(), at(8, 0))
	assert.Equal(t, 1, report.Due)
	assert.Equal(t, 1, report.Sent)
	require.Equal(t, 1, sender.total())

	msg := sender.calls[0]
	assert.Equal(t, models.ReminderTitle, msg.Title)
	assert.Equal(t, "Amoxicillin - 500mg", msg.Body)
	assert.Equal(t, map[string]string{
		"prescriptionId": "p1",
		"medication":     "Amoxicillin",
		"dosage":         "500mg",
		"time":           "08:00",
		"click_action":   "OPEN_MEDICATION_DETAILS",
	}, msg.Data)
	assert.Equal(t, []string{"t1"}, msg.Tokens)

	d.RunCycle(context.Background(), at(8, 1))
	d.RunCycle(context.Background(), at(9, 0))
	assert.Equal(t, 1, sender.total())
}

func TestRunCycle_NoTokensMeansNoDeliveryAndNoWrites(t *testing.T) {
	users := newFakeUsers(&models.NotificationProfile{ID: "u1"})
	sender := &fakeSender{}
	d := newTestDispatcher([]models.Prescription{morningPrescription()}, users, sender, nil)

	report := d.RunCycle(context.Background(), at(8, 0))
	assert.Equal(t, 1, report.Due)
	assert.Equal(t, 0, report.Messages)
	assert.Equal(t, 0, sender.total())
	assert.Equal(t, 0, users.removeCalls("u1"))
}

func TestRunCycle_MissingUserIsSkipped(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher([]models.Prescription{morningPrescription()}, newFakeUsers(), sender, nil)

	report := d.RunCycle(context.Background(), at(8, 0))
	assert.Equal(t, 0, report.Messages)
	assert.Equal(t, 0, sender.total())
}

func TestRunCycle_PrunesFailedTokensAtomically(t *testing.T) {
	users := newFakeUsers(&models.NotificationProfile{ID: "u1", NotificationTokens: []string{"t1", "t2", "t3"}})
	sender := &fakeSender{badTokens: map[string]bool{"t2": true}, transient: map[string]bool{"t3": true}}
	d := newTestDispatcher([]models.Prescription{morningPrescription()}, users, sender, nil)

	report := d.RunCycle(context.Background(), at(8, 0))
	assert.Equal(t, 1, report.Pruned)
	assert.Equal(t, 1, users.removeCalls("u1"))
	assert.Equal(t, []string{"t2"}, users.removed["u1"][0])
	assert.Equal(t, []string{"t1", "t3"}, users.tokens("u1"))
}

func TestRunCycle_DeliveryErrorIsIsolatedPerUser(t *testing.T) {
	second := morningPrescription()
	second.ID = "p2"
	second.UserID = "u2"

	users := newFakeUsers(
		&models.NotificationProfile{ID: "u1", NotificationTokens: []string{"a"}},
		&models.NotificationProfile{ID: "u2", NotificationTokens: []string{"b"}},
	)
	sender := &fakeSender{failUsers: map[string]error{"u1": errors.New("fcm down")}}
	d := newTestDispatcher([]models.Prescription{morningPrescription(), second}, users, sender, nil)

	report := d.RunCycle(context.Background(), at(8, 0))
	assert.Equal(t, 1, sender.callsFor("u1"))
	assert.Equal(t, 1, sender.callsFor("u2"))
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []string{"a"}, users.tokens("u1"))
}

func TestRunCycle_LedgerPreventsDuplicateInSameWindow(t *testing.T) {
	users := newFakeUsers(&models.NotificationProfile{ID: "u1", NotificationTokens: []string{"t1"}})
	sender := &fakeSender{}
	d := newTestDispatcher([]models.Prescription{morningPrescription()}, users, sender, newMemoryLedger())
	d.MinuteBucket = 15

	d.RunCycle(context.Background(), at(8, 0))
	second := d.RunCycle(context.Background(), at(8, 5))

	assert.Equal(t, 1, sender.total())
	assert.Equal(t, 1, second.Skipped)

	next := at(8, 0).Add(24 * time.Hour)
	d.RunCycle(context.Background(), next)
	assert.Equal(t, 2, sender.total())
}

func TestRunCycle_LedgerReleasedWhenSendFails(t *testing.T) {
	users := newFakeUsers(&models.NotificationProfile{ID: "u1", NotificationTokens: []string{"t1"}})
	sender := &fakeSender{failUsers: map[string]error{"u1": errors.New("timeout")}}
	ledger := newMemoryLedger()
	d := newTestDispatcher([]models.Prescription{morningPrescription()}, users, sender, ledger)

	d.RunCycle(context.Background(), at(8, 0))
	assert.Empty(t, ledger.claims)

	delete(sender.failUsers, "u1")
	report := d.RunCycle(context.Background(), at(8, 0))
	assert.Equal(t, 1, report.Sent)
}

func TestRunCycle_QueryErrorEndsCycle(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(&fakePrescriptions{err: errors.New("db down")}, newFakeUsers(), sender, nil, 1, nil)

	report := d.RunCycle(context.Background(), at(8, 0))
	assert.Equal(t, 0, report.Due)
	assert.Equal(t, 0, sender.total())
}

func TestRunCycle_SameDayLaterStartIsNotified(t *testing.T) {
	p := morningPrescription()
	p.StartDate = at(18, 0)
	require.True(t, p.IsActive(at(8, 0)))

	users := newFakeUsers(&models.NotificationProfile{ID: "u1", NotificationTokens: []string{"t1"}})
	sender := &fakeSender{}
	d := newTestDispatcher([]models.Prescription{p}, users, sender, nil)

	report := d.RunCycle(context.Background(), at(8, 0))
	assert.Equal(t, 1, report.Due)
	assert.Equal(t, 1, report.Sent)

	tomorrowStart := p
	tomorrowStart.StartDate = at(18, 0).Add(24 * time.Hour)
	d = newTestDispatcher([]models.Prescription{tomorrowStart}, users, &fakeSender{}, nil)
	assert.Equal(t, 0, d.RunCycle(context.Background(), at(8, 0)).Due)
}

func TestRunCycle_LedgerReleasedWhenNoTokenReached(t *testing.T) {
	users := newFakeUsers(&models.NotificationProfile{ID: "u1", NotificationTokens: []string{"t1"}})
	sender := &fakeSender{transient: map[string]bool{"t1": true}}
	ledger := newMemoryLedger()
	d := newTestDispatcher([]models.Prescription{morningPrescription()}, users, sender, ledger)
	d.MinuteBucket = 15

	first := d.RunCycle(context.Background(), at(8, 0))
	assert.Equal(t, 1, first.Failed)
	assert.Equal(t, 0, first.Sent)
	assert.Empty(t, ledger.claims)
	assert.Equal(t, []string{"t1"}, users.tokens("u1"))

	delete(sender.transient, "t1")
	second := d.RunCycle(context.Background(), at(8, 5))
	assert.Equal(t, 1, second.Sent)
	assert.Equal(t, 0, second.Skipped)

	third := d.RunCycle(context.Background(), at(8, 10))
	assert.Equal(t, 1, third.Skipped)
	assert.Equal(t, 3, sender.total())
}
