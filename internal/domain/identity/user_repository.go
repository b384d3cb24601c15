package identity

import (
	"context"

	"github.com/aims/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// FindByEmail finds a user by email, case-insensitively
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindAll returns a page of users matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
	// Count counts users matching the filter, ignoring paging
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, user *User) error
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	// ExistsByEmail checks whether another user already uses the email
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	// ListRefs returns every user as an id/name pair ordered by name
	ListRefs(ctx context.Context) ([]shared.NamedRef, error)
}
