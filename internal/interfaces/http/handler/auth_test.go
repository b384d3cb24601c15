package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	appidentity "github.com/aims/backend/internal/application/identity"
	"github.com/aims/backend/internal/domain/identity"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/auth"
	"github.com/aims/backend/internal/infrastructure/config"
	"github.com/aims/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testJWTConfig returns a default JWT config for tests
func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                "test-secret-key-32-characters-long",
		Issuer:                "test-issuer",
		AccessTokenExpiration: 15 * time.Minute,
	}
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListRefs(ctx context.Context) ([]shared.NamedRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shared.NamedRef), args.Error(1)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

func setupAuthHandler(t *testing.T) (*AuthHandler, *MockUserRepository, *auth.JWTService) {
	t.Helper()
	repo := new(MockUserRepository)
	jwtService := auth.NewJWTService(testJWTConfig())
	service := appidentity.NewAuthService(repo, jwtService, zap.NewNop())
	return NewAuthHandler(service), repo, jwtService
}

func testAdmin(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Admin User", "admin@aims.com", identity.RoleSuperAdmin, "password")
	require.NoError(t, err)
	return user
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, repo, jwtService := setupAuthHandler(t)
	user := testAdmin(t)
	repo.On("FindByEmail", mock.Anything, "admin@aims.com").Return(user, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", `{"email":"Admin@aims.com","password":"password"}`)
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bearer", data["token_type"])

	token, ok := data["access_token"].(string)
	require.True(t, ok)
	claims, err := jwtService.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "super_admin", claims.Role)

	userData, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin@aims.com", userData["email"])
	assert.NotContains(t, userData, "password_hash")
	repo.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *MockUserRepository, user *identity.User)
		body  string
	}{
		{
			name: "unknown email",
			setup: func(repo *MockUserRepository, _ *identity.User) {
				repo.On("FindByEmail", mock.Anything, "ghost@aims.com").Return(nil, shared.ErrNotFound)
			},
			body: `{"email":"ghost@aims.com","password":"password"}`,
		},
		{
			name: "wrong password",
			setup: func(repo *MockUserRepository, user *identity.User) {
				repo.On("FindByEmail", mock.Anything, "admin@aims.com").Return(user, nil)
			},
			body: `{"email":"admin@aims.com","password":"wrong-password"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo, _ := setupAuthHandler(t)
			tt.setup(repo, testAdmin(t))

			c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", tt.body)
			h.Login(c)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			resp := decodeResponse(t, w)
			assert.Equal(t, dto.ErrCodeInvalidCredentials, resp.Error.Code)
			assert.Equal(t, "Invalid email or password", resp.Message)
		})
	}
}

func TestAuthHandler_Login_InvalidRequestBody(t *testing.T) {
	h, repo, _ := setupAuthHandler(t)

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", `{"email":`)
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidJSON, decodeResponse(t, w).Error.Code)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h, _, _ := setupAuthHandler(t)

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", `{}`)
	h.Login(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Len(t, resp.Error.Details, 2)
}

func TestAuthHandler_Me_Success(t *testing.T) {
	h, repo, _ := setupAuthHandler(t)
	user := testAdmin(t)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/auth/me", "")
	setJWTContext(c, user.ID, string(user.Role))
	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeMap(t, w)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), data["id"])
	assert.Equal(t, "Admin User", data["name"])
}

func TestAuthHandler_Me_Unauthorized(t *testing.T) {
	h, _, _ := setupAuthHandler(t)

	c, w := newTestContext(http.MethodGet, "/api/v1/auth/me", "")
	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeUnauthorized, decodeResponse(t, w).Error.Code)
}

func TestAuthHandler_Me_UserDeleted(t *testing.T) {
	h, repo, _ := setupAuthHandler(t)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	c, w := newTestContext(http.MethodGet, "/api/v1/auth/me", "")
	setJWTContext(c, id, "inventory_user")
	h.Me(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
