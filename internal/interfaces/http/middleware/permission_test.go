package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	svc := newTestJWTService(time.Minute)

	router := gin.New()
	router.Use(JWTAuthMiddleware(svc))
	router.GET("/api/v1/manufacturers", RequireRole("super_admin", "inventory_manager"), okHandler)

	tests := []struct {
		role   string
		status int
	}{
		{"super_admin", http.StatusOK},
		{"inventory_manager", http.StatusOK},
		{"inventory_user", http.StatusForbidden},
		{"unknown", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			token, _ := issueToken(t, svc, tt.role)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/manufacturers", nil)
			req.Header.Set(AuthHeaderKey, BearerPrefix+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusForbidden {
				assert.Equal(t, "ERR_FORBIDDEN", decodeError(t, w).Error.Code)
			}
		})
	}
}

func TestRequireRole_NoClaims(t *testing.T) {
	router := gin.New()
	router.GET("/test", RequireRole("super_admin"), okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_UNAUTHORIZED", decodeError(t, w).Error.Code)
}
