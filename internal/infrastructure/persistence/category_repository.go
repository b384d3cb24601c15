package persistence

import (
	"context"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var categorySearchColumns = []string{"name", "description"}

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Category, error) {
	var model models.CategoryModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateReadError(err, "Category")
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Category, error) {
	var rows []models.CategoryModel
	query := applySearch(conn(ctx, r.db).Model(&models.CategoryModel{}), filter.Search, categorySearchColumns)
	query = applyPage(applyOrder(query, filter, CategorySortFields, "id"), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateReadError(err, "categories")
	}
	categories := make([]inventory.Category, len(rows))
	for i := range rows {
		categories[i] = *rows[i].ToDomain()
	}
	return categories, nil
}

// Count counts categories matching the filter
func (r *GormCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(conn(ctx, r.db).Model(&models.CategoryModel{}), filter.Search, categorySearchColumns)
	if err := query.Count(&count).Error; err != nil {
		return 0, translateReadError(err, "categories")
	}
	return count, nil
}

// Create inserts a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *inventory.Category) error {
	if err := conn(ctx, r.db).Create(models.CategoryModelFromDomain(category)).Error; err != nil {
		return translateWriteError(err, "Category")
	}
	return nil
}

// Save updates an existing category
func (r *GormCategoryRepository) Save(ctx context.Context, category *inventory.Category) error {
	if err := conn(ctx, r.db).Save(models.CategoryModelFromDomain(category)).Error; err != nil {
		return translateWriteError(err, "Category")
	}
	return nil
}

// Delete removes a category by ID
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return translateDeleteError(result.Error, "Category")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound.WithMessage("Category not found")
	}
	return nil
}

// ExistsByID checks whether a category exists
func (r *GormCategoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.CategoryModel{}).Where("id = ?", id))
}

// ExistsByName checks whether another category already uses the name
func (r *GormCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := conn(ctx, r.db).Model(&models.CategoryModel{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != nil {
		query = excludeIDCond(query, "id", *excludeID)
	}
	return exists(query)
}

// ListRefs returns every category as an id/name pair ordered by name
func (r *GormCategoryRepository) ListRefs(ctx context.Context) ([]shared.NamedRef, error) {
	return listRefs(conn(ctx, r.db).Model(&models.CategoryModel{}))
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ inventory.CategoryRepository = (*GormCategoryRepository)(nil)
