package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aims/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, limit int, clock *time.Time) *RateLimiter {
	t.Helper()
	rl := NewRateLimiter(limit, time.Minute)
	rl.now = func() time.Time { return *clock }
	t.Cleanup(rl.Close)
	return rl
}

func TestRateLimiter_Allow(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newTestLimiter(t, 3, &clock)

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.Equal(t, 0, rl.Remaining("a"))

	// other clients have their own budget
	assert.True(t, rl.Allow("b"))
	assert.Equal(t, 2, rl.Remaining("b"))

	clock = clock.Add(time.Minute)
	assert.Equal(t, 3, rl.Remaining("a"))
	assert.True(t, rl.Allow("a"))
}

func TestRateLimiter_CloseIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	rl.Close()
	assert.NotPanics(t, rl.Close)
}

func TestRateLimit(t *testing.T) {
	clock := time.Now()
	rl := newTestLimiter(t, 2, &clock)

	router := gin.New()
	router.POST("/api/v1/auth/login", RateLimit(rl), okHandler)

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
		return w
	}

	w := send()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, send().Code)

	w = send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, dto.ErrCodeRateLimited, decodeError(t, w).Error.Code)
}
