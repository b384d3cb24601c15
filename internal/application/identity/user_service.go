package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aims/backend/internal/application/support"
	"github.com/aims/backend/internal/domain/identity"
	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/domain/shared/validation"
	"github.com/aims/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

const entityUser = "User"

// assignmentCounter is the part of AssetRepository the delete policy needs
type assignmentCounter interface {
	CountByReference(ctx context.Context, ref inventory.AssetReference, id uuid.UUID) (int64, error)
}

// UserService handles user administration
type UserService struct {
	userRepo  identity.UserRepository
	assetRepo assignmentCounter
	tx        shared.TransactionManager
	changes   *support.Changes
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo identity.UserRepository,
	assetRepo assignmentCounter,
	tx shared.TransactionManager,
	changes *support.Changes,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		assetRepo: assetRepo,
		tx:        tx,
		changes:   changes,
	}
}

func roleValues() []string {
	roles := identity.Roles()
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

func (s *UserService) validate(ctx context.Context, req UserRequest, excludeID *uuid.UUID) error {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := strings.TrimSpace(req.Role)
	password := shared.Deref(req.Password)
	creating := excludeID == nil

	return validation.New().
		Field("name",
			validation.Must(validation.Required(name), "The name is required."),
			validation.Must(validation.MaxLength(name, 255), "The name may not be greater than 255 characters."),
		).
		Field("email",
			validation.Must(validation.Required(email), "The email is required."),
			validation.Must(validation.MaxLength(email, 255), "The email may not be greater than 255 characters."),
			validation.Must(validation.Email(email), "The email must be a valid email address."),
			validation.Must(validation.Unique(func(ctx context.Context) (bool, error) {
				return s.userRepo.ExistsByEmail(ctx, email, excludeID)
			}), "This email address is already registered."),
		).
		Field("role",
			validation.Must(validation.Required(role), "The role is required."),
			validation.Must(validation.OneOf(role, roleValues()...), "The selected role is invalid."),
		).
		Field("password",
			validation.Must(validation.When(creating, validation.Required(password)), "The password is required."),
			validation.Must(validation.MinLength(password, identity.MinPasswordLength), "The password must be at least 8 characters."),
			validation.Must(validation.MaxLength(password, identity.MaxPasswordLength), "The password may not be greater than 72 characters."),
		).
		Validate(ctx)
}

// List returns a page of users
func (s *UserService) List(ctx context.Context, req support.ListRequest) (shared.Paginated[UserResponse], error) {
	filter := req.Filter()
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[UserResponse]{}, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[UserResponse]{}, err
	}
	page := shared.NewPaginated(users, total, filter.Page, filter.PageSize)
	return shared.MapPaginated(page, func(u identity.User) UserResponse {
		return ToUserResponse(&u)
	}), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Create validates the request, hashes the password and stores the user
func (s *UserService) Create(ctx context.Context, req UserRequest) (resp *UserResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "UserService", "Create")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err := s.validate(ctx, req, nil); err != nil {
		return nil, err
	}
	user, err := identity.NewUser(req.Name, req.Email, identity.Role(strings.TrimSpace(req.Role)), shared.Deref(req.Password))
	if err != nil {
		return nil, err
	}
	err = s.userRepo.Create(ctx, user)
	s.changes.Record(ctx, entityUser, support.OpCreate, user.ID, err)
	if err != nil {
		return nil, err
	}
	out := ToUserResponse(user)
	return &out, nil
}

// Update validates and applies profile changes inside a transaction. A
// non-empty password replaces the current one.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UserRequest) (resp *UserResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "UserService", "Update", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, req, &id); err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := user.Update(req.Name, req.Email, identity.Role(strings.TrimSpace(req.Role))); err != nil {
			return err
		}
		if p := shared.Deref(req.Password); p != "" {
			if err := user.SetPassword(p); err != nil {
				return err
			}
		}
		return s.userRepo.Save(ctx, user)
	})
	s.changes.Record(ctx, entityUser, support.OpUpdate, id, err)
	out := ToUserResponse(user)
	if err != nil {
		return &out, shared.ErrUpdateFailed.Wrap(err.Error(), err)
	}
	return &out, nil
}

// Delete removes a user that has no assets assigned
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "UserService", "Delete", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.assetRepo.CountByReference(ctx, inventory.RefAssignedUser, id)
	if err != nil {
		return shared.ErrDeleteFailed.Wrap("Failed to delete user.", err)
	}
	if n > 0 {
		return shared.ErrEntityInUse.WithMessage(
			fmt.Sprintf("User cannot be deleted because it is assigned to %d asset(s).", n))
	}

	err = s.userRepo.Delete(ctx, id)
	s.changes.Record(ctx, entityUser, support.OpDelete, id, err)
	if err != nil {
		var de *shared.DomainError
		if errors.As(err, &de) {
			return err
		}
		return shared.ErrDeleteFailed.Wrap("Failed to delete user.", err)
	}
	return nil
}
