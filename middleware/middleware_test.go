package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careinsight/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(verifier utils.TokenVerifier, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(verifier))
	r.GET("/me", func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userID")})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	verifier := utils.NewJWTVerifier("test-secret")
	token, err := verifier.GenerateToken("user-42", time.Hour)
	require.NoError(t, err)

	var reached bool
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newAuthRouter(verifier, &reached).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	verifier := utils.NewJWTVerifier("test-secret")
	other, err := utils.NewJWTVerifier("other-secret").GenerateToken("user-42", time.Hour)
	require.NoError(t, err)
	expired, err := verifier.GenerateToken("user-42", -time.Minute)
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"empty bearer":   "Bearer ",
		"wrong secret":   "Bearer " + other,
		"expired":        "Bearer " + expired,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			var reached bool
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			newAuthRouter(verifier, &reached).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, reached)

			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "unauthenticated", body.Error)
		})
	}
}

func TestRateLimitMiddleware_PerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2"))
}
