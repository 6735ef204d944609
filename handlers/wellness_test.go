package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"careinsight/models"
	"careinsight/services/wellness"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWellnessService struct {
	saved   *models.WellnessProfileInput
	summary *models.WellnessSummary
	err     error
}

func (s *stubWellnessService) SaveProfile(_ context.Context, userID string, in models.WellnessProfileInput) (*models.WellnessSummary, error) {
	s.saved = &in
	return s.summary, s.err
}

func (s *stubWellnessService) GetSummary(context.Context, string) (*models.WellnessSummary, error) {
	return s.summary, s.err
}

func newWellnessRouter(svc wellness.WellnessService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "u1") })
	h := NewWellnessHandler(svc)
	r.PUT("/api/wellness/profile", h.SaveProfileHandler)
	r.GET("/api/wellness/profile", h.GetProfileHandler)
	return r
}

func TestSaveWellnessProfile(t *testing.T) {
	svc := &stubWellnessService{summary: &models.WellnessSummary{BMI: 24.7, BMICategory: "Normal"}}
	req := httptest.NewRequest(http.MethodPut, "/api/wellness/profile",
		bytes.NewBufferString(`{"height":180,"weight":80,"age":30,"gender":"male","goal":"maintain"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newWellnessRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out models.WellnessSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Normal", out.BMICategory)
	assert.Equal(t, 80.0, svc.saved.Weight)
}

func TestSaveWellnessProfile_RejectsBadInput(t *testing.T) {
	for _, body := range []string{
		`{"height":0,"weight":80,"age":30}`,
		`{"height":180,"weight":80,"age":30,"goal":"bulk"}`,
	} {
		svc := &stubWellnessService{}
		req := httptest.NewRequest(http.MethodPut, "/api/wellness/profile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newWellnessRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Nil(t, svc.saved)
	}
}

func TestGetWellnessProfile_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	newWellnessRouter(&stubWellnessService{err: wellness.ErrNoProfile}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wellness/profile", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
