package reminder

import (
	"context"
	"errors"
	"sync"
	"time"

	"careinsight/models"
)

type fakePrescriptions struct {
	items []models.Prescription
	err   error
}

func (f *fakePrescriptions) Create(context.Context, *models.Prescription) error { return nil }

func (f *fakePrescriptions) GetByID(_ context.Context, id string) (*models.Prescription, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakePrescriptions) ListByUser(context.Context, string) ([]models.Prescription, error) {
	return f.items, nil
}

func (f *fakePrescriptions) ListStartedBy(_ context.Context, now time.Time) ([]models.Prescription, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Prescription
	for _, p := range f.items {
		if p.StartDate.Before(models.EndOfDay(now)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePrescriptions) Delete(context.Context, string, string) error { return nil }

type fakeUsers struct {
	mu       sync.Mutex
	profiles map[string]*models.NotificationProfile
	removed  map[string][][]string
	getErr   error
}

func newFakeUsers(profiles ...*models.NotificationProfile) *fakeUsers {
	f := &fakeUsers{
		profiles: map[string]*models.NotificationProfile{},
		removed:  map[string][][]string{},
	}
	for _, p := range profiles {
		f.profiles[p.ID] = p
	}
	return f
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.NotificationProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.NotificationTokens = append([]string(nil), p.NotificationTokens...)
	return &cp, nil
}

func (f *fakeUsers) RegisterToken(_ context.Context, id string, reg models.TokenRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		p = &models.NotificationProfile{ID: id}
		f.profiles[id] = p
	}
	for _, t := range p.NotificationTokens {
		if t == reg.Token {
			return nil
		}
	}
	p.NotificationTokens = append(p.NotificationTokens, reg.Token)
	return nil
}

func (f *fakeUsers) RemoveTokens(_ context.Context, id string, tokens []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed[id] = append(f.removed[id], tokens)
	if p, ok := f.profiles[id]; ok {
		p.NotificationTokens = PruneTokens(p.NotificationTokens, tokens)
	}
	return nil
}

func (f *fakeUsers) tokens(id string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profiles[id].NotificationTokens
}

func (f *fakeUsers) removeCalls(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.removed[id])
}

// fakeSender answers per user; failing tokens are reported as permanent failures.
type fakeSender struct {
	mu        sync.Mutex
	calls     []*models.ReminderMessage
	failUsers map[string]error
	badTokens map[string]bool
	transient map[string]bool
}

func (f *fakeSender) SendReminder(_ context.Context, msg *models.ReminderMessage) (*models.DeliveryResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, msg)
	f.mu.Unlock()

	if err := f.failUsers[msg.UserID]; err != nil {
		return nil, err
	}

	result := &models.DeliveryResult{}
	for _, t := range msg.Tokens {
		switch {
		case f.badTokens[t]:
			result.FailureCount++
			result.Responses = append(result.Responses, models.TokenOutcome{Token: t, Error: errors.New("unregistered")})
		case f.transient[t]:
			result.FailureCount++
			result.Responses = append(result.Responses, models.TokenOutcome{Token: t, Retryable: true, Error: errors.New("unavailable")})
		default:
			result.SuccessCount++
			result.Responses = append(result.Responses, models.TokenOutcome{Token: t, Success: true})
		}
	}
	return result, nil
}

func (f *fakeSender) callsFor(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.UserID == userID {
			n++
		}
	}
	return n
}

func (f *fakeSender) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type memoryLedger struct {
	mu     sync.Mutex
	claims map[string]bool
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{claims: map[string]bool{}}
}

func (l *memoryLedger) Claim(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.claims[key] {
		return false, nil
	}
	l.claims[key] = true
	return true, nil
}

func (l *memoryLedger) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.claims, key)
	return nil
}

type fakeRecords struct {
	mu        sync.Mutex
	logs      []models.MedicationLog
	reminders []models.Reminder
	err       error
}

func (f *fakeRecords) CreateMedicationLog(_ context.Context, log models.MedicationLog) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, log)
	return "log-id", nil
}

func (f *fakeRecords) CreateReminder(_ context.Context, r models.Reminder) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reminders = append(f.reminders, r)
	return "reminder-id", nil
}

func (f *fakeRecords) ListMedicationLogs(_ context.Context, userID string) ([]models.MedicationLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.MedicationLog
	for _, l := range f.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}
