package identity

import (
	"context"
	"testing"
	"time"

	"github.com/aims/backend/internal/domain/identity"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	admin, err := identity.NewUser("Admin User", "admin@aims.com", identity.RoleSuperAdmin, "password")
	require.NoError(t, err)

	t.Run("issues token for valid credentials", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenIssuer)
		svc := NewAuthService(users, tokens, zap.NewNop())

		expires := time.Now().Add(8 * time.Hour)
		users.On("FindByEmail", mock.Anything, "admin@aims.com").Return(admin, nil)
		tokens.On("GenerateAccessToken", auth.TokenSubject{
			UserID: admin.ID,
			Name:   "Admin User",
			Email:  "admin@aims.com",
			Role:   "super_admin",
		}).Return(&auth.AccessToken{Token: "signed", TokenType: "Bearer", ExpiresAt: expires}, nil)

		resp, err := svc.Login(ctx, LoginRequest{Email: " Admin@aims.com ", Password: "password"})
		require.NoError(t, err)
		assert.Equal(t, "signed", resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, admin.ID, resp.User.ID)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := NewAuthService(users, new(MockTokenIssuer), zap.NewNop())
		users.On("FindByEmail", mock.Anything, "nobody@aims.com").Return(nil, shared.ErrNotFound.WithMessage("User not found"))
		users.On("FindByEmail", mock.Anything, "admin@aims.com").Return(admin, nil)

		_, unknown := svc.Login(ctx, LoginRequest{Email: "nobody@aims.com", Password: "password"})
		_, wrong := svc.Login(ctx, LoginRequest{Email: "admin@aims.com", Password: "not-it"})
		assert.Equal(t, ErrInvalidCredentials, unknown)
		assert.Equal(t, ErrInvalidCredentials, wrong)
	})
}

func TestAuthService_Me(t *testing.T) {
	user, err := identity.NewUser("Inventory User", "user@aims.com", identity.RoleInventoryUser, "password")
	require.NoError(t, err)
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	resp, err := NewAuthService(users, new(MockTokenIssuer), zap.NewNop()).Me(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "inventory_user", resp.Role)
}
