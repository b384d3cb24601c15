package persistence

import (
	"context"
	"fmt"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assetSearchColumns covers the asset's own fields and the name of every relation.
var assetSearchColumns = []string{
	"assets.asset_tag",
	"assets.name",
	"assets.serial_number",
	"assets.model_name",
	"CAST(assets.purchase_date AS TEXT)",
	"CAST(assets.purchase_price AS TEXT)",
	"assets.status",
	"assets.notes",
	"categories.name",
	"manufacturers.name",
	"locations.name",
	"users.name",
}

const assetDetailsColumns = "assets.*, " +
	"categories.name AS category_name, " +
	"manufacturers.name AS manufacturer_name, " +
	"locations.name AS location_name, " +
	"users.name AS assigned_to_user_name"

// GormAssetRepository implements AssetRepository using GORM.
// Relation names are resolved with explicit LEFT JOINs, never lazily.
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GormAssetRepository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// joined returns the assets table with every relation joined
func (r *GormAssetRepository) joined(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).Table("assets").
		Joins("LEFT JOIN categories ON categories.id = assets.category_id").
		Joins("LEFT JOIN manufacturers ON manufacturers.id = assets.manufacturer_id").
		Joins("LEFT JOIN locations ON locations.id = assets.location_id").
		Joins("LEFT JOIN users ON users.id = assets.assigned_to_user_id")
}

// FindByID loads the bare asset
func (r *GormAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Asset, error) {
	var model models.AssetModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateReadError(err, "Asset")
	}
	return model.ToDomain(), nil
}

// FindDetailsByID loads the asset with its relation names
func (r *GormAssetRepository) FindDetailsByID(ctx context.Context, id uuid.UUID) (*inventory.AssetDetails, error) {
	var rows []models.AssetDetailsRow
	err := r.joined(ctx).Select(assetDetailsColumns).Where("assets.id = ?", id).Limit(1).Find(&rows).Error
	if err != nil {
		return nil, translateReadError(err, "Asset")
	}
	if len(rows) == 0 {
		return nil, shared.ErrNotFound.WithMessage("Asset not found")
	}
	details := rows[0].ToDomain()
	return &details, nil
}

// FindAll returns a page of assets with relation names
func (r *GormAssetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.AssetDetails, error) {
	var rows []models.AssetDetailsRow
	query := applySearch(r.joined(ctx).Select(assetDetailsColumns), filter.Search, assetSearchColumns)
	query = applyPage(applyOrder(query, filter, AssetSortFields, "assets.id"), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateReadError(err, "assets")
	}
	assets := make([]inventory.AssetDetails, len(rows))
	for i := range rows {
		assets[i] = rows[i].ToDomain()
	}
	return assets, nil
}

// Count counts assets matching the filter
func (r *GormAssetRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := applySearch(r.joined(ctx), filter.Search, assetSearchColumns).Count(&count).Error; err != nil {
		return 0, translateReadError(err, "assets")
	}
	return count, nil
}

// Create inserts a new asset
func (r *GormAssetRepository) Create(ctx context.Context, asset *inventory.Asset) error {
	if err := conn(ctx, r.db).Create(models.AssetModelFromDomain(asset)).Error; err != nil {
		return translateWriteError(err, "Asset")
	}
	return nil
}

// Save updates an existing asset
func (r *GormAssetRepository) Save(ctx context.Context, asset *inventory.Asset) error {
	if err := conn(ctx, r.db).Save(models.AssetModelFromDomain(asset)).Error; err != nil {
		return translateWriteError(err, "Asset")
	}
	return nil
}

// Delete removes an asset by ID
func (r *GormAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.AssetModel{}, "id = ?", id)
	if result.Error != nil {
		return translateDeleteError(result.Error, "Asset")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound.WithMessage("Asset not found")
	}
	return nil
}

// ExistsByAssetTag checks whether another asset already uses the tag
func (r *GormAssetRepository) ExistsByAssetTag(ctx context.Context, tag string, excludeID *uuid.UUID) (bool, error) {
	query := conn(ctx, r.db).Model(&models.AssetModel{}).Where("asset_tag = ?", tag)
	if excludeID != nil {
		query = excludeIDCond(query, "id", *excludeID)
	}
	return exists(query)
}

// ExistsBySerialNumber checks whether another asset already uses the serial number
func (r *GormAssetRepository) ExistsBySerialNumber(ctx context.Context, serial string, excludeID *uuid.UUID) (bool, error) {
	query := conn(ctx, r.db).Model(&models.AssetModel{}).Where("serial_number = ?", serial)
	if excludeID != nil {
		query = excludeIDCond(query, "id", *excludeID)
	}
	return exists(query)
}

// CountByReference counts assets pointing at id through ref
func (r *GormAssetRepository) CountByReference(ctx context.Context, ref inventory.AssetReference, id uuid.UUID) (int64, error) {
	column, err := referenceColumn(ref)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := conn(ctx, r.db).Model(&models.AssetModel{}).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets by %s: %w", ref, err)
	}
	return count, nil
}

func referenceColumn(ref inventory.AssetReference) (string, error) {
	switch ref {
	case inventory.RefCategory, inventory.RefManufacturer, inventory.RefLocation, inventory.RefAssignedUser:
		return "assets." + string(ref), nil
	}
	return "", fmt.Errorf("unknown asset reference %q", ref)
}

var _ inventory.AssetRepository = (*GormAssetRepository)(nil)
