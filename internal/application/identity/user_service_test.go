package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/aims/backend/internal/domain/identity"
	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/domain/shared/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService() (*UserService, *MockUserRepository, *MockAssignmentCounter) {
	users := new(MockUserRepository)
	assets := new(MockAssignmentCounter)
	return NewUserService(users, assets, directTx{}, nil), users, assets
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and hides it", func(t *testing.T) {
		svc, users, _ := newUserService()
		users.On("ExistsByEmail", mock.Anything, "lead@aims.com", (*uuid.UUID)(nil)).Return(false, nil)
		var stored *identity.User
		users.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*identity.User) }).
			Return(nil)

		resp, err := svc.Create(ctx, UserRequest{
			Name:     "Inventory Lead",
			Email:    "Lead@AIMS.com",
			Role:     "inventory_manager",
			Password: strPtr("s3cret-pass"),
		})
		require.NoError(t, err)
		assert.Equal(t, "lead@aims.com", resp.Email)
		assert.Equal(t, "inventory_manager", resp.Role)
		assert.True(t, stored.CheckPassword("s3cret-pass"))
	})

	t.Run("validates every field", func(t *testing.T) {
		svc, users, _ := newUserService()
		users.On("ExistsByEmail", mock.Anything, "admin@aims.com", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := svc.Create(ctx, UserRequest{Email: "admin@aims.com", Role: "root", Password: strPtr("short")})
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{
			"name":     "The name is required.",
			"email":    "This email address is already registered.",
			"role":     "The selected role is invalid.",
			"password": "The password must be at least 8 characters.",
		}, verr.Fields)
	})

	t.Run("password is required on create", func(t *testing.T) {
		svc, users, _ := newUserService()
		users.On("ExistsByEmail", mock.Anything, "new@aims.com", (*uuid.UUID)(nil)).Return(false, nil)

		_, err := svc.Create(ctx, UserRequest{Name: "New", Email: "new@aims.com", Role: "inventory_user"})
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "The password is required.", verr.Fields["password"])
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	user, err := identity.NewUser("Inventory User", "user@aims.com", identity.RoleInventoryUser, "password")
	require.NoError(t, err)
	originalHash := user.PasswordHash

	t.Run("keeps password when omitted", func(t *testing.T) {
		svc, users, _ := newUserService()
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		users.On("ExistsByEmail", mock.Anything, "user@aims.com", &user.ID).Return(false, nil)
		users.On("Save", mock.Anything, user).Return(nil)

		resp, err := svc.Update(ctx, user.ID, UserRequest{Name: "Inventory Clerk", Email: "user@aims.com", Role: "inventory_user"})
		require.NoError(t, err)
		assert.Equal(t, "Inventory Clerk", resp.Name)
		assert.Equal(t, originalHash, user.PasswordHash)
	})

	t.Run("replaces password when given", func(t *testing.T) {
		svc, users, _ := newUserService()
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		users.On("ExistsByEmail", mock.Anything, "user@aims.com", &user.ID).Return(false, nil)
		users.On("Save", mock.Anything, user).Return(nil)

		_, err := svc.Update(ctx, user.ID, UserRequest{Name: "Inventory Clerk", Email: "user@aims.com", Role: "inventory_user", Password: strPtr("rotated-pass")})
		require.NoError(t, err)
		assert.True(t, user.CheckPassword("rotated-pass"))
	})

	t.Run("missing user", func(t *testing.T) {
		svc, users, _ := newUserService()
		id := uuid.New()
		users.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, id, UserRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("save failure", func(t *testing.T) {
		svc, users, _ := newUserService()
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		users.On("ExistsByEmail", mock.Anything, "user@aims.com", &user.ID).Return(false, nil)
		users.On("Save", mock.Anything, user).Return(errors.New("connection reset"))

		resp, err := svc.Update(ctx, user.ID, UserRequest{Name: "Renamed", Email: "user@aims.com", Role: "inventory_user"})
		assert.ErrorIs(t, err, shared.ErrUpdateFailed)
		require.NotNil(t, resp)
		assert.Equal(t, "Renamed", resp.Name)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	user, err := identity.NewUser("Inventory User", "user@aims.com", identity.RoleInventoryUser, "password")
	require.NoError(t, err)

	t.Run("rejects user with assigned assets", func(t *testing.T) {
		svc, users, assets := newUserService()
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		assets.On("CountByReference", mock.Anything, inventory.RefAssignedUser, user.ID).Return(int64(4), nil)

		assert.ErrorIs(t, svc.Delete(ctx, user.ID), shared.ErrEntityInUse)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes unassigned user", func(t *testing.T) {
		svc, users, assets := newUserService()
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		assets.On("CountByReference", mock.Anything, inventory.RefAssignedUser, user.ID).Return(int64(0), nil)
		users.On("Delete", mock.Anything, user.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, user.ID))
	})

	t.Run("unexpected failure", func(t *testing.T) {
		svc, users, assets := newUserService()
		users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		assets.On("CountByReference", mock.Anything, inventory.RefAssignedUser, user.ID).Return(int64(0), nil)
		users.On("Delete", mock.Anything, user.ID).Return(errors.New("timeout"))

		err := svc.Delete(ctx, user.ID)
		assert.ErrorIs(t, err, shared.ErrDeleteFailed)
		assert.Equal(t, "Failed to delete user.", err.Error())
	})
}
