package persistence

import (
	"context"
	"strings"

	"github.com/aims/backend/internal/domain/identity"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var userSearchColumns = []string{"name", "email", "role"}

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateReadError(err, "User")
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel
	err := conn(ctx, r.db).First(&model, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, translateReadError(err, "User")
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of users matching the filter
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	var rows []models.UserModel
	query := applySearch(conn(ctx, r.db).Model(&models.UserModel{}), filter.Search, userSearchColumns)
	query = applyPage(applyOrder(query, filter, UserSortFields, "id"), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateReadError(err, "users")
	}
	users := make([]identity.User, len(rows))
	for i := range rows {
		users[i] = *rows[i].ToDomain()
	}
	return users, nil
}

// Count counts users matching the filter
func (r *GormUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(conn(ctx, r.db).Model(&models.UserModel{}), filter.Search, userSearchColumns)
	if err := query.Count(&count).Error; err != nil {
		return 0, translateReadError(err, "users")
	}
	return count, nil
}

// Create inserts a new user
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	if err := conn(ctx, r.db).Create(models.UserModelFromDomain(user)).Error; err != nil {
		return translateWriteError(err, "User")
	}
	return nil
}

// Save updates an existing user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	if err := conn(ctx, r.db).Save(models.UserModelFromDomain(user)).Error; err != nil {
		return translateWriteError(err, "User")
	}
	return nil
}

// Delete removes a user by ID
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return translateDeleteError(result.Error, "User")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound.WithMessage("User not found")
	}
	return nil
}

// ExistsByID checks whether a user exists
func (r *GormUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.UserModel{}).Where("id = ?", id))
}

// ExistsByEmail checks whether another user already uses the email
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	query := conn(ctx, r.db).Model(&models.UserModel{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != nil {
		query = excludeIDCond(query, "id", *excludeID)
	}
	return exists(query)
}

// ListRefs returns every user as an id/name pair ordered by name
func (r *GormUserRepository) ListRefs(ctx context.Context) ([]shared.NamedRef, error) {
	return listRefs(conn(ctx, r.db).Model(&models.UserModel{}))
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
