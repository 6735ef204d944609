package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"careinsight/models"
	"careinsight/services/prescription"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPrescriptionService struct {
	createErr error
	getErr    error
}

func (s *stubPrescriptionService) CreatePrescription(_ context.Context, userID string, in models.PrescriptionInput) (*models.Prescription, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Prescription{ID: "p1", UserID: userID, Medication: in.Medication}, nil
}

func (s *stubPrescriptionService) GetPrescription(context.Context, string, string) (*models.Prescription, error) {
	return nil, s.getErr
}

func (s *stubPrescriptionService) ListPrescriptions(context.Context, string) ([]models.Prescription, error) {
	return []models.Prescription{}, nil
}

func (s *stubPrescriptionService) DeletePrescription(context.Context, string, string) error {
	return s.getErr
}

func newPrescriptionRouter(svc prescription.PrescriptionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "u1") })
	h := NewPrescriptionHandler(svc)
	r.POST("/api/prescriptions", h.CreatePrescriptionHandler)
	r.GET("/api/prescriptions/:id", h.GetPrescriptionHandler)
	return r
}

const validPrescription = `{"medication":"Amoxicillin","dosage":"500mg","frequency":2,"durationDays":7,"dosageTimes":[{"hour":"8","minute":"0"}]}`

func TestCreatePrescription_Created(t *testing.T) {
	w, body := postJSON(t, newPrescriptionRouter(&stubPrescriptionService{}), "/api/prescriptions", validPrescription)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "u1", body["userId"])
}

func TestCreatePrescription_InvalidDoseTimeIsBadRequest(t *testing.T) {
	svc := &stubPrescriptionService{createErr: fmt.Errorf("%w: hour out of range", prescription.ErrInvalidPrescription)}
	w, body := postJSON(t, newPrescriptionRouter(svc), "/api/prescriptions", validPrescription)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid-argument", body["error"])
}

func TestGetPrescription_NotFound(t *testing.T) {
	r := newPrescriptionRouter(&stubPrescriptionService{getErr: prescription.ErrPrescriptionNotFound})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/prescriptions/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
