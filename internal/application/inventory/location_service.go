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

const entityLocation = "Location"

// LocationService handles location-related business operations
type LocationService struct {
	locationRepo inventory.LocationRepository
	assetRepo    referenceCounter
	tx           shared.TransactionManager
	changes      *support.Changes
}

// NewLocationService creates a new LocationService
func NewLocationService(
	locationRepo inventory.LocationRepository,
	assetRepo referenceCounter,
	tx shared.TransactionManager,
	changes *support.Changes,
) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		assetRepo:    assetRepo,
		tx:           tx,
		changes:      changes,
	}
}

func (s *LocationService) validate(ctx context.Context, req LocationRequest, excludeID *uuid.UUID) error {
	name := strings.TrimSpace(req.Name)
	address := shared.Deref(req.Address)
	return validation.New().
		Field("name",
			validation.Must(validation.Required(name), "The location name is required."),
			validation.Must(validation.MaxLength(name, maxName), "The location name must not exceed 255 characters."),
			validation.Must(unique(name, excludeID, s.locationRepo.ExistsByName), "This location name is already taken. Please choose another."),
		).
		Field("address",
			validation.Must(validation.MaxLength(address, maxLongText), "The address must not exceed 500 characters."),
		).
		Validate(ctx)
}

// List returns a page of locations
func (s *LocationService) List(ctx context.Context, req support.ListRequest) (shared.Paginated[LocationResponse], error) {
	filter := req.Filter()
	locations, err := s.locationRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[LocationResponse]{}, err
	}
	total, err := s.locationRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[LocationResponse]{}, err
	}
	page := shared.NewPaginated(locations, total, filter.Page, filter.PageSize)
	return shared.MapPaginated(page, func(l inventory.Location) LocationResponse {
		return ToLocationResponse(&l)
	}), nil
}

// GetByID retrieves a location by ID
func (s *LocationService) GetByID(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToLocationResponse(location)
	return &resp, nil
}

// Create validates and stores a new location
func (s *LocationService) Create(ctx context.Context, req LocationRequest) (resp *LocationResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "LocationService", "Create")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err := s.validate(ctx, req, nil); err != nil {
		return nil, err
	}
	location, err := inventory.NewLocation(req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	err = s.locationRepo.Create(ctx, location)
	s.changes.Record(ctx, entityLocation, support.OpCreate, location.ID, err)
	if err != nil {
		return nil, err
	}
	out := ToLocationResponse(location)
	return &out, nil
}

// Update validates and applies changes inside a transaction. Optional fields
// missing from the body keep their stored values. When the write
// fails the returned response holds the unsaved in-memory state.
func (s *LocationService) Update(ctx context.Context, id uuid.UUID, req LocationRequest) (resp *LocationResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "LocationService", "Update", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req = req.withStored(location)
	if err := s.validate(ctx, req, &id); err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := location.Update(req.Name, req.Address); err != nil {
			return err
		}
		return s.locationRepo.Save(ctx, location)
	})
	s.changes.Record(ctx, entityLocation, support.OpUpdate, id, err)
	out := ToLocationResponse(location)
	if err != nil {
		return &out, updateFailed(err)
	}
	return &out, nil
}

// Delete removes a location that no asset references
func (s *LocationService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "LocationService", "Delete", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if _, err := s.locationRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := ensureUnreferenced(ctx, s.assetRepo, inventory.RefLocation, entityLocation, id); err != nil {
		return err
	}
	err = s.locationRepo.Delete(ctx, id)
	s.changes.Record(ctx, entityLocation, support.OpDelete, id, err)
	if err != nil {
		return deleteFailed(entityLocation, err)
	}
	return nil
}
