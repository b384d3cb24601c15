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

const entityCategory = "Category"

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo inventory.CategoryRepository
	assetRepo    referenceCounter
	tx           shared.TransactionManager
	changes      *support.Changes
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo inventory.CategoryRepository,
	assetRepo referenceCounter,
	tx shared.TransactionManager,
	changes *support.Changes,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		assetRepo:    assetRepo,
		tx:           tx,
		changes:      changes,
	}
}

func (s *CategoryService) validate(ctx context.Context, req CategoryRequest, excludeID *uuid.UUID) error {
	name := strings.TrimSpace(req.Name)
	description := shared.Deref(req.Description)
	return validation.New().
		Field("name",
			validation.Must(validation.Required(name), "The category name is required."),
			validation.Must(validation.MaxLength(name, maxName), "The category name may not exceed 255 characters."),
			validation.Must(unique(name, excludeID, s.categoryRepo.ExistsByName), "This category name has already been taken."),
		).
		Field("description",
			validation.Must(validation.MaxLength(description, maxLongText), "The description may not exceed 500 characters."),
		).
		Validate(ctx)
}

// List returns a page of categories
func (s *CategoryService) List(ctx context.Context, req support.ListRequest) (shared.Paginated[CategoryResponse], error) {
	filter := req.Filter()
	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[CategoryResponse]{}, err
	}
	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[CategoryResponse]{}, err
	}
	page := shared.NewPaginated(categories, total, filter.Page, filter.PageSize)
	return shared.MapPaginated(page, func(c inventory.Category) CategoryResponse {
		return ToCategoryResponse(&c)
	}), nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Create validates and stores a new category
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (resp *CategoryResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "CategoryService", "Create")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err := s.validate(ctx, req, nil); err != nil {
		return nil, err
	}
	category, err := inventory.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	err = s.categoryRepo.Create(ctx, category)
	s.changes.Record(ctx, entityCategory, support.OpCreate, category.ID, err)
	if err != nil {
		return nil, err
	}
	out := ToCategoryResponse(category)
	return &out, nil
}

// Update validates and applies changes inside a transaction. Optional fields
// missing from the body keep their stored values. When the write
// fails the returned response holds the unsaved in-memory state.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req CategoryRequest) (resp *CategoryResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "CategoryService", "Update", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req = req.withStored(category)
	if err := s.validate(ctx, req, &id); err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := category.Update(req.Name, req.Description); err != nil {
			return err
		}
		return s.categoryRepo.Save(ctx, category)
	})
	s.changes.Record(ctx, entityCategory, support.OpUpdate, id, err)
	out := ToCategoryResponse(category)
	if err != nil {
		return &out, updateFailed(err)
	}
	return &out, nil
}

// Delete removes a category that no asset references
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "CategoryService", "Delete", telemetry.EntityID(id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := ensureUnreferenced(ctx, s.assetRepo, inventory.RefCategory, entityCategory, id); err != nil {
		return err
	}
	err = s.categoryRepo.Delete(ctx, id)
	s.changes.Record(ctx, entityCategory, support.OpDelete, id, err)
	if err != nil {
		return deleteFailed(entityCategory, err)
	}
	return nil
}
