package inventory

import (
	"context"
	"strings"

	"github.com/aims/backend/internal/application/support"
	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/domain/shared/validation"
	"github.com/aims/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

const entityAsset = "Asset"

// UserDirectory is the part of the user store that assets depend on
type UserDirectory interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ListRefs(ctx context.Context) ([]shared.NamedRef, error)
}

// AssetService handles asset-related business operations
type AssetService struct {
	assetRepo        inventory.AssetRepository
	categoryRepo     inventory.CategoryRepository
	manufacturerRepo inventory.ManufacturerRepository
	locationRepo     inventory.LocationRepository
	users            UserDirectory
	tx               shared.TransactionManager
	changes          *support.Changes
}

// NewAssetService creates a new AssetService
func NewAssetService(
	assetRepo inventory.AssetRepository,
	categoryRepo inventory.CategoryRepository,
	manufacturerRepo inventory.ManufacturerRepository,
	locationRepo inventory.LocationRepository,
	users UserDirectory,
	tx shared.TransactionManager,
	changes *support.Changes,
) *AssetService {
	return &AssetService{
		assetRepo:        assetRepo,
		categoryRepo:     categoryRepo,
		manufacturerRepo: manufacturerRepo,
		locationRepo:     locationRepo,
		users:            users,
		tx:               tx,
		changes:          changes,
	}
}

func assetStatusValues() []string {
	statuses := inventory.AssetStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (s *AssetService) validate(ctx context.Context, req AssetRequest, excludeID *uuid.UUID) error {
	tag := strings.TrimSpace(req.AssetTag)
	name := strings.TrimSpace(req.Name)
	serial := strings.TrimSpace(shared.Deref(req.SerialNumber))
	model := strings.TrimSpace(shared.Deref(req.ModelName))
	date := strings.TrimSpace(shared.Deref(req.PurchaseDate))
	status := strings.TrimSpace(req.Status)
	categoryID := strings.TrimSpace(shared.Deref(req.CategoryID))
	manufacturerID := strings.TrimSpace(shared.Deref(req.ManufacturerID))
	locationID := strings.TrimSpace(shared.Deref(req.LocationID))
	userID := strings.TrimSpace(shared.Deref(req.AssignedToUserID))

	return validation.New().
		Field("asset_tag",
			validation.Must(validation.Required(tag), "The asset tag is required."),
			validation.Must(validation.MaxLength(tag, maxName), "The asset tag may not be greater than 255 characters."),
			validation.Must(unique(tag, excludeID, s.assetRepo.ExistsByAssetTag), "This asset tag is already in use."),
		).
		Field("name",
			validation.Must(validation.Required(name), "The asset name is required."),
			validation.Must(validation.MaxLength(name, maxName), "The asset name may not be greater than 255 characters."),
		).
		Field("serial_number",
			validation.Must(validation.MaxLength(serial, maxName), "The serial number may not be greater than 255 characters."),
			validation.Must(validation.When(serial != "", unique(serial, excludeID, s.assetRepo.ExistsBySerialNumber)),
				"This serial number is already assigned to another asset."),
		).
		Field("model_name",
			validation.Must(validation.MaxLength(model, maxName), "The model name may not be greater than 255 characters."),
		).
		Field("purchase_date",
			validation.Must(validation.Date(date), "The purchase date must be a valid date."),
		).
		Field("purchase_price",
			validation.Must(validation.NonNegative(req.PurchasePrice), "The purchase price cannot be negative."),
			validation.Must(validation.MaxDecimalPlaces(req.PurchasePrice, inventory.PriceScale), "The purchase price may not have more than 2 decimal places."),
		).
		Field("status",
			validation.Must(validation.Required(status), "The asset status is required."),
			validation.Must(validation.OneOf(status, assetStatusValues()...), "The selected status is invalid."),
		).
		Field("category_id",
			validation.Must(validation.Required(categoryID), "Please select a category."),
			validation.Must(exists(categoryID, s.categoryRepo.ExistsByID), "The selected category does not exist."),
		).
		Field("manufacturer_id",
			validation.Must(validation.When(manufacturerID != "", exists(manufacturerID, s.manufacturerRepo.ExistsByID)),
				"The selected manufacturer does not exist."),
		).
		Field("location_id",
			validation.Must(validation.When(locationID != "", exists(locationID, s.locationRepo.ExistsByID)),
				"The selected location does not exist."),
		).
		Field("assigned_to_user_id",
			validation.Must(validation.When(userID != "", exists(userID, s.users.ExistsByID)),
				"The selected user does not exist."),
		).
		Validate(ctx)
}

// List returns a page of assets with their relation names
func (s *AssetService) List(ctx context.Context, req support.ListRequest) (shared.Paginated[AssetResponse], error) {
	filter := req.Filter()
	assets, err := s.assetRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[AssetResponse]{}, err
	}
	total, err := s.assetRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[AssetResponse]{}, err
	}
	page := shared.NewPaginated(assets, total, filter.Page, filter.PageSize)
	return shared.MapPaginated(page, func(a inventory.AssetDetails) AssetResponse {
		return ToAssetResponse(&a)
	}), nil
}

// GetByID retrieves an asset with its relation names
func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (*AssetResponse, error) {
	details, err := s.assetRepo.FindDetailsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToAssetResponse(details)
	return &resp, nil
}

// Options returns the pick lists for asset forms, each ordered by name
func (s *AssetService) Options(ctx context.Context) (*AssetOptionsResponse, error) {
	categories, err := s.categoryRepo.ListRefs(ctx)
	if err != nil {
		return nil, err
	}
	manufacturers, err := s.manufacturerRepo.ListRefs(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.locationRepo.ListRefs(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListRefs(ctx)
	if err != nil {
		return nil, err
	}
	return &AssetOptionsResponse{
		Categories:    toOptions(categories),
		Manufacturers: toOptions(manufacturers),
		Locations:     toOptions(locations),
		Users:         toOptions(users),
	}, nil
}

// Create validates and stores a new asset, returning it with relation names
func (s *AssetService) Create(ctx context.Context, req AssetRequest) (resp *AssetResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "AssetService", "Create")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err := s.validate(ctx, req, nil); err != nil {
		return nil, err
	}
	asset, err := inventory.NewAsset(req.attributes())
	if err != nil {
		return nil, err
	}
	err = s.assetRepo.Create(ctx, asset)
	s.changes.Record(ctx, entityAsset, support.OpCreate, asset.ID, err)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, asset.ID)
}

// Update validates and applies changes inside a transaction. Optional fields
// missing from the body keep their stored values. When the write
// fails the returned response holds the unsaved in-memory state.
func (s *AssetService) Update(ctx context.Context, id uuid.UUID, req AssetRequest) (resp *AssetResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "AssetService", "Update", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	asset, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req = req.withStored(asset)
	if err := s.validate(ctx, req, &id); err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := asset.Update(req.attributes()); err != nil {
			return err
		}
		return s.assetRepo.Save(ctx, asset)
	})
	s.changes.Record(ctx, entityAsset, support.OpUpdate, id, err)
	if err != nil {
		state := ToAssetResponse(&inventory.AssetDetails{Asset: *asset})
		return &state, updateFailed(err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes an asset
func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "AssetService", "Delete", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if _, err := s.assetRepo.FindByID(ctx, id); err != nil {
		return err
	}
	err = s.assetRepo.Delete(ctx, id)
	s.changes.Record(ctx, entityAsset, support.OpDelete, id, err)
	if err != nil {
		return deleteFailed(entityAsset, err)
	}
	return nil
}
