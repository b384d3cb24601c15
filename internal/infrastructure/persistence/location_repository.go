package persistence

import (
	"context"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var locationSearchColumns = []string{"name", "address"}

// GormLocationRepository implements LocationRepository using GORM
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// FindByID finds a location by its ID
func (r *GormLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Location, error) {
	var model models.LocationModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateReadError(err, "Location")
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of locations matching the filter
func (r *GormLocationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Location, error) {
	var rows []models.LocationModel
	query := applySearch(conn(ctx, r.db).Model(&models.LocationModel{}), filter.Search, locationSearchColumns)
	query = applyPage(applyOrder(query, filter, LocationSortFields, "id"), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateReadError(err, "locations")
	}
	locations := make([]inventory.Location, len(rows))
	for i := range rows {
		locations[i] = *rows[i].ToDomain()
	}
	return locations, nil
}

// Count counts locations matching the filter
func (r *GormLocationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(conn(ctx, r.db).Model(&models.LocationModel{}), filter.Search, locationSearchColumns)
	if err := query.Count(&count).Error; err != nil {
		return 0, translateReadError(err, "locations")
	}
	return count, nil
}

// Create inserts a new location
func (r *GormLocationRepository) Create(ctx context.Context, location *inventory.Location) error {
	if err := conn(ctx, r.db).Create(models.LocationModelFromDomain(location)).Error; err != nil {
		return translateWriteError(err, "Location")
	}
	return nil
}

// Save updates an existing location
func (r *GormLocationRepository) Save(ctx context.Context, location *inventory.Location) error {
	if err := conn(ctx, r.db).Save(models.LocationModelFromDomain(location)).Error; err != nil {
		return translateWriteError(err, "Location")
	}
	return nil
}

// Delete removes a location by ID
func (r *GormLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.LocationModel{}, "id = ?", id)
	if result.Error != nil {
		return translateDeleteError(result.Error, "Location")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound.WithMessage("Location not found")
	}
	return nil
}

// ExistsByID checks whether a location exists
func (r *GormLocationRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(conn(ctx, r.db).Model(&models.LocationModel{}).Where("id = ?", id))
}

// ExistsByName checks whether another location already uses the name
func (r *GormLocationRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := conn(ctx, r.db).Model(&models.LocationModel{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != nil {
		query = excludeIDCond(query, "id", *excludeID)
	}
	return exists(query)
}

// ListRefs returns every location as an id/name pair ordered by name
func (r *GormLocationRepository) ListRefs(ctx context.Context) ([]shared.NamedRef, error) {
	return listRefs(conn(ctx, r.db).Model(&models.LocationModel{}))
}

var _ inventory.LocationRepository = (*GormLocationRepository)(nil)
