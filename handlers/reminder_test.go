package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careinsight/models"
	"careinsight/services/reminder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReminderService struct {
	err      error
	next     time.Time
	ackCalls int
}

func (s *stubReminderService) AcknowledgeTaken(_ context.Context, userID, prescriptionID string) error {
	s.ackCalls++
	if userID == "" {
		return reminder.ErrUnauthenticated
	}
	return s.err
}

func (s *stubReminderService) Snooze(_ context.Context, userID, prescriptionID string) (time.Time, error) {
	return s.next, s.err
}

func (s *stubReminderService) MedicationLogs(context.Context, string) ([]models.MedicationLog, error) {
	return nil, s.err
}

func newReminderRouter(svc reminder.ReminderService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) { c.Set("userID", userID) })
	}
	h := NewReminderHandler(svc)
	r.POST("/api/medications/taken", h.MedicationTakenHandler)
	r.POST("/api/reminders/snooze", h.SnoozeReminderHandler)
	return r
}

func postJSON(t *testing.T, r http.Handler, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestMedicationTaken_Success(t *testing.T) {
	svc := &stubReminderService{}
	w, body := postJSON(t, newReminderRouter(svc, "u1"), "/api/medications/taken", `{"prescriptionId":"p1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Medication logged successfully", body["message"])
	assert.Equal(t, 1, svc.ackCalls)
}

func TestMedicationTaken_Unauthenticated(t *testing.T) {
	svc := &stubReminderService{}
	w, body := postJSON(t, newReminderRouter(svc, ""), "/api/medications/taken", `{"prescriptionId":"p1"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthenticated", body["error"])
	assert.Zero(t, svc.ackCalls)
}

func TestMedicationTaken_MissingPrescription(t *testing.T) {
	svc := &stubReminderService{}
	w, _ := postJSON(t, newReminderRouter(svc, "u1"), "/api/medications/taken", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.ackCalls)
}

func TestMedicationTaken_StoreFailureIsGeneric(t *testing.T) {
	svc := &stubReminderService{err: errors.New("mongo: connection reset by peer")}
	w, body := postJSON(t, newReminderRouter(svc, "u1"), "/api/medications/taken", `{"prescriptionId":"p1"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal", body["error"])
	assert.Equal(t, "Failed to log medication", body["message"])
}

func TestSnooze_ReturnsNextReminder(t *testing.T) {
	next := time.Date(2024, 5, 1, 8, 15, 0, 0, time.UTC)
	w, body := postJSON(t, newReminderRouter(&stubReminderService{next: next}, "u1"), "/api/reminders/snooze", `{"prescriptionId":"p1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "2024-05-01T08:15:00Z", body["nextReminder"])
}

func TestSnooze_StoreFailure(t *testing.T) {
	svc := &stubReminderService{err: errors.New("write failed")}
	w, body := postJSON(t, newReminderRouter(svc, "u1"), "/api/reminders/snooze", `{"prescriptionId":"p1"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to snooze reminder", body["message"])
}
