package persistence

import (
	"context"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var manufacturerSearchColumns = []string{"name", "url", "support_url", "support_phone", "support_email"}

// GormManufacturerRepository implements ManufacturerRepository using GORM
type GormManufacturerRepository struct {
	db *gorm.DB
}

// NewGormManufacturerRepository creates a new GormManufacturerRepository
func NewGormManufacturerRepository(db *gorm.DB) *GormManufacturerRepository {
	return &GormManufacturerRepository{db: db}
}

// FindByID finds a manufacturer by its ID
func (r *GormManufacturerRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Manufacturer, error) {
	var model models.ManufacturerModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateReadError(err, "Manufacturer")
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of manufacturers matching the filter
func (r *GormManufacturerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Manufacturer, error) {
	var rows []models.ManufacturerModel
	query := r.search(ctx, filter)
	query = applyPage(applyOrder(query, filter, ManufacturerSortFields, "id"), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateReadError(err, "manufacturers")
	}
	manufacturers := make([]inventory.Manufacturer, len(rows))
	for i := range rows {
		manufacturers[i] = *rows[i].ToDomain()
	}
	return manufacturers, nil
}

// Count counts manufacturers matching the filter
func (r *GormManufacturerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.search(ctx, filter).Count(&count).Error; err != nil {
		return 0, translateReadError(err, "manufacturers")
	}
	return count, nil
}

func (r *GormManufacturerRepository) search(ctx context.Context, filter shared.Filter) *gorm.DB {
	return applySearch(conn(ctx, r.db).Model(&models.ManufacturerModel{}), filter.Search, manufacturerSearchColumns)
}

// Create inserts a new manufacturer
func (r *GormManufacturerRepository) Create(ctx context.Context, manufacturer *inventory.Manufacturer) error {
	if err := conn(ctx, r.db).Create(models.ManufacturerModelFromDomain(manufacturer)).Error; err != nil {
		return translateWriteError(err, "Manufacturer")
	}
	return nil
}

// Save updates an existing manufacturer
func (r *GormManufacturerRepository) Save(ctx context.Context, manufacturer *inventory.Manufacturer) error {
	if err := conn(ctx, r.db).Save(models.ManufacturerModelFromDomain(manufacturer)).Error; err != nil {
		return translateWriteError(err, "Manufacturer")
	}
	return nil
}

// Delete removes a manufacturer by ID
func (r *GormManufacturerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.ManufacturerModel{}, "id = ?", id)
	if result.Error != nil {
		return translateDeleteError(result.Error, "Manufacturer")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound.WithMessage("Manufacturer not found")
	}
	return nil
}

// ExistsByID checks whether a manufacturer exists
func (r *GormManufacturerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.ManufacturerModel{}).Where("id = ?", id))
}

// ExistsByName checks whether another manufacturer already uses the name
func (r *GormManufacturerRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := conn(ctx, r.db).Model(&models.ManufacturerModel{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != nil {
		query = excludeIDCond(query, "id", *excludeID)
	}
	return exists(query)
}

// ListRefs returns every manufacturer as an id/name pair ordered by name
func (r *GormManufacturerRepository) ListRefs(ctx context.Context) ([]shared.NamedRef, error) {
	return listRefs(conn(ctx, r.db).Model(&models.ManufacturerModel{}))
}

var _ inventory.ManufacturerRepository = (*GormManufacturerRepository)(nil)
