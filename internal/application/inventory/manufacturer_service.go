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

const entityManufacturer = "Manufacturer"

// ManufacturerService handles manufacturer-related business operations
type ManufacturerService struct {
	manufacturerRepo inventory.ManufacturerRepository
	assetRepo        referenceCounter
	tx               shared.TransactionManager
	changes          *support.Changes
}

// NewManufacturerService creates a new ManufacturerService
func NewManufacturerService(
	manufacturerRepo inventory.ManufacturerRepository,
	assetRepo referenceCounter,
	tx shared.TransactionManager,
	changes *support.Changes,
) *ManufacturerService {
	return &ManufacturerService{
		manufacturerRepo: manufacturerRepo,
		assetRepo:        assetRepo,
		tx:               tx,
		changes:          changes,
	}
}

func (s *ManufacturerService) validate(ctx context.Context, req ManufacturerRequest, excludeID *uuid.UUID) error {
	name := strings.TrimSpace(req.Name)
	url := strings.TrimSpace(shared.Deref(req.URL))
	supportURL := strings.TrimSpace(shared.Deref(req.SupportURL))
	phone := strings.TrimSpace(shared.Deref(req.SupportPhone))
	email := strings.TrimSpace(shared.Deref(req.SupportEmail))

	return validation.New().
		Field("name",
			validation.Must(validation.Required(name), "The manufacturer name is required."),
			validation.Must(validation.MaxLength(name, maxName), "The manufacturer name may not be greater than 255 characters."),
			validation.Must(unique(name, excludeID, s.manufacturerRepo.ExistsByName), "This manufacturer name is already taken."),
		).
		Field("url",
			validation.Must(validation.URL(url), "The website URL must be a valid URL."),
			validation.Must(validation.MaxLength(url, maxName), "The website URL may not be greater than 255 characters."),
		).
		Field("support_url",
			validation.Must(validation.URL(supportURL), "The support URL must be a valid URL."),
			validation.Must(validation.MaxLength(supportURL, maxName), "The support URL may not be greater than 255 characters."),
		).
		Field("support_phone",
			validation.Must(validation.MaxLength(phone, maxPhone), "The support phone number may not be greater than 50 characters."),
		).
		Field("support_email",
			validation.Must(validation.Email(email), "The support email must be a valid email address."),
			validation.Must(validation.MaxLength(email, maxName), "The support email may not be greater than 255 characters."),
		).
		Validate(ctx)
}

// List returns a page of manufacturers
func (s *ManufacturerService) List(ctx context.Context, req support.ListRequest) (shared.Paginated[ManufacturerResponse], error) {
	filter := req.Filter()
	manufacturers, err := s.manufacturerRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[ManufacturerResponse]{}, err
	}
	total, err := s.manufacturerRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[ManufacturerResponse]{}, err
	}
	page := shared.NewPaginated(manufacturers, total, filter.Page, filter.PageSize)
	return shared.MapPaginated(page, func(m inventory.Manufacturer) ManufacturerResponse {
		return ToManufacturerResponse(&m)
	}), nil
}

// GetByID retrieves a manufacturer by ID
func (s *ManufacturerService) GetByID(ctx context.Context, id uuid.UUID) (*ManufacturerResponse, error) {
	manufacturer, err := s.manufacturerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToManufacturerResponse(manufacturer)
	return &resp, nil
}

// Create validates and stores a new manufacturer
func (s *ManufacturerService) Create(ctx context.Context, req ManufacturerRequest) (resp *ManufacturerResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "ManufacturerService", "Create")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err := s.validate(ctx, req, nil); err != nil {
		return nil, err
	}
	manufacturer, err := inventory.NewManufacturer(req.Name, req.contact())
	if err != nil {
		return nil, err
	}
	err = s.manufacturerRepo.Create(ctx, manufacturer)
	s.changes.Record(ctx, entityManufacturer, support.OpCreate, manufacturer.ID, err)
	if err != nil {
		return nil, err
	}
	out := ToManufacturerResponse(manufacturer)
	return &out, nil
}

// Update validates and applies changes inside a transaction. Optional fields
// missing from the body keep their stored values. When the write
// fails the returned response holds the unsaved in-memory state.
func (s *ManufacturerService) Update(ctx context.Context, id uuid.UUID, req ManufacturerRequest) (resp *ManufacturerResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "ManufacturerService", "Update", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	manufacturer, err := s.manufacturerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req = req.withStored(manufacturer)
	if err := s.validate(ctx, req, &id); err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := manufacturer.Update(req.Name, req.contact()); err != nil {
			return err
		}
		return s.manufacturerRepo.Save(ctx, manufacturer)
	})
	s.changes.Record(ctx, entityManufacturer, support.OpUpdate, id, err)
	out := ToManufacturerResponse(manufacturer)
	if err != nil {
		return &out, updateFailed(err)
	}
	return &out, nil
}

// Delete removes a manufacturer that no asset references
func (s *ManufacturerService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "ManufacturerService", "Delete", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if _, err := s.manufacturerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := ensureUnreferenced(ctx, s.assetRepo, inventory.RefManufacturer, entityManufacturer, id); err != nil {
		return err
	}
	err = s.manufacturerRepo.Delete(ctx, id)
	s.changes.Record(ctx, entityManufacturer, support.OpDelete, id, err)
	if err != nil {
		return deleteFailed(entityManufacturer, err)
	}
	return nil
}
