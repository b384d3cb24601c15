package inventory

import (
	"context"

	"github.com/aims/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// FindAll returns a page of categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	// Count counts categories matching the filter, ignoring paging
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// Create inserts a new category
	Create(ctx context.Context, category *Category) error
	// Save updates an existing category
	Save(ctx context.Context, category *Category) error
	// Delete removes a category by ID
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByID checks whether a category exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	// ExistsByName checks whether another category already uses the name
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	// ListRefs returns every category as an id/name pair ordered by name
	ListRefs(ctx context.Context) ([]shared.NamedRef, error)
}

// ManufacturerRepository defines the interface for manufacturer persistence
type ManufacturerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Manufacturer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Manufacturer, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, manufacturer *Manufacturer) error
	Save(ctx context.Context, manufacturer *Manufacturer) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	ListRefs(ctx context.Context) ([]shared.NamedRef, error)
}

// LocationRepository defines the interface for location persistence
type LocationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Location, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Location, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, location *Location) error
	Save(ctx context.Context, location *Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	ListRefs(ctx context.Context) ([]shared.NamedRef, error)
}

// AssetReference names a relation column on the assets table
type AssetReference string

const (
	RefCategory     AssetReference = "category_id"
	RefManufacturer AssetReference = "manufacturer_id"
	RefLocation     AssetReference = "location_id"
	RefAssignedUser AssetReference = "assigned_to_user_id"
)

// AssetRepository defines the interface for asset persistence.
// Reads that return AssetDetails resolve relation names with explicit joins.
type AssetRepository interface {
	// FindByID loads the bare asset
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)
	// FindDetailsByID loads the asset with its relation names
	FindDetailsByID(ctx context.Context, id uuid.UUID) (*AssetDetails, error)
	// FindAll returns a page of assets with relation names
	FindAll(ctx context.Context, filter shared.Filter) ([]AssetDetails, error)
	// Count counts assets matching the filter, ignoring paging
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, asset *Asset) error
	Save(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByAssetTag checks whether another asset already uses the tag
	ExistsByAssetTag(ctx context.Context, tag string, excludeID *uuid.UUID) (bool, error)
	// ExistsBySerialNumber checks whether another asset already uses the serial
	ExistsBySerialNumber(ctx context.Context, serial string, excludeID *uuid.UUID) (bool, error)
	// CountByReference counts assets pointing at id through ref
	CountByReference(ctx context.Context, ref AssetReference, id uuid.UUID) (int64, error)
}
