package middleware

import (
	"net/http"
	"slices"

	"github.com/aims/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleConfig holds configuration for the role guard
type RoleConfig struct {
	// Logger for denied requests
	Logger *zap.Logger
}

// RequireRole lets the request through only when the authenticated caller
// holds one of roles. It must run after the JWT middleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return RequireRoleWithConfig(RoleConfig{}, roles...)
}

// RequireRoleWithConfig is RequireRole with custom config
func RequireRoleWithConfig(cfg RoleConfig, roles ...string) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		if !slices.Contains(roles, claims.Role) {
			log.Warn("Role check failed",
				zap.String("user_id", claims.UserID),
				zap.String("role", claims.Role),
				zap.Strings("allowed_roles", roles),
				zap.String("path", c.Request.URL.Path),
			)
			abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden,
				"You do not have permission to access this resource")
			return
		}
		c.Next()
	}
}
