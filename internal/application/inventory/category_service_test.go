package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/aims/backend/internal/application/support"
	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/domain/shared/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryFixture struct {
	categories *MockCategoryRepository
	assets     *MockAssetRepository
	tx         *passthroughTx
	events     *capturePublisher
	service    *CategoryService
}

func newCategoryFixture() *categoryFixture {
	f := &categoryFixture{
		categories: new(MockCategoryRepository),
		assets:     new(MockAssetRepository),
		tx:         &passthroughTx{},
		events:     &capturePublisher{},
	}
	f.service = NewCategoryService(f.categories, f.assets, f.tx, support.NewChanges(f.events, nil))
	return f
}

func existingCategory(t *testing.T, name string) *inventory.Category {
	t.Helper()
	c, err := inventory.NewCategory(name, strPtr("Portable computers"))
	require.NoError(t, err)
	return c
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores category and publishes change", func(t *testing.T) {
		f := newCategoryFixture()
		f.categories.On("ExistsByName", mock.Anything, "Laptops", (*uuid.UUID)(nil)).Return(false, nil)
		f.categories.On("Create", mock.Anything, mock.AnythingOfType("*inventory.Category")).Return(nil)

		resp, err := f.service.Create(ctx, CategoryRequest{Name: " Laptops ", Description: strPtr("Portable computers")})
		require.NoError(t, err)
		assert.Equal(t, "Laptops", resp.Name)
		assert.Equal(t, "Portable computers", *resp.Description)
		require.Len(t, f.events.events, 1)
		assert.Equal(t, shared.EventRecordCreated, f.events.events[0].EventType())
		assert.Equal(t, resp.ID, f.events.events[0].AggregateID())
		f.categories.AssertExpectations(t)
	})

	t.Run("requires a name", func(t *testing.T) {
		f := newCategoryFixture()
		_, err := f.service.Create(ctx, CategoryRequest{Name: "  "})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "The category name is required.", verr.Fields["name"])
		f.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a taken name", func(t *testing.T) {
		f := newCategoryFixture()
		f.categories.On("ExistsByName", mock.Anything, "Laptops", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := f.service.Create(ctx, CategoryRequest{Name: "Laptops"})
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "This category name has already been taken.", verr.Fields["name"])
		assert.Empty(t, f.events.events)
	})

	t.Run("rejects a long description", func(t *testing.T) {
		f := newCategoryFixture()
		f.categories.On("ExistsByName", mock.Anything, "Laptops", (*uuid.UUID)(nil)).Return(false, nil)
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'a'
		}

		_, err := f.service.Create(ctx, CategoryRequest{Name: "Laptops", Description: strPtr(string(long))})
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "The description may not exceed 500 characters.", verr.Fields["description"])
	})

	t.Run("store failure during validation is not a field error", func(t *testing.T) {
		f := newCategoryFixture()
		boom := errors.New("connection refused")
		f.categories.On("ExistsByName", mock.Anything, "Laptops", (*uuid.UUID)(nil)).Return(false, boom)

		_, err := f.service.Create(ctx, CategoryRequest{Name: "Laptops"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeping its own name succeeds", func(t *testing.T) {
		f := newCategoryFixture()
		c := existingCategory(t, "Laptops")
		f.categories.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.categories.On("ExistsByName", mock.Anything, "Laptops", &c.ID).Return(false, nil)
		f.categories.On("Save", mock.Anything, c).Return(nil)

		resp, err := f.service.Update(ctx, c.ID, CategoryRequest{Name: "Laptops", Description: strPtr("Updated")})
		require.NoError(t, err)
		assert.Equal(t, "Updated", *resp.Description)
		assert.Equal(t, 1, f.tx.calls)
		require.Len(t, f.events.events, 1)
		assert.Equal(t, shared.EventRecordUpdated, f.events.events[0].EventType())
	})

	t.Run("description left out of the body is kept", func(t *testing.T) {
		f := newCategoryFixture()
		c := existingCategory(t, "Laptops")
		f.categories.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.categories.On("ExistsByName", mock.Anything, "Notebooks", &c.ID).Return(false, nil)
		f.categories.On("Save", mock.Anything, c).Return(nil)

		req := CategoryRequest{Name: "Notebooks"}
		req.SetKeys([]string{"name"})
		resp, err := f.service.Update(ctx, c.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "Notebooks", resp.Name)
		require.NotNil(t, resp.Description)
		assert.Equal(t, "Portable computers", *resp.Description)
	})

	t.Run("explicit null description is cleared", func(t *testing.T) {
		f := newCategoryFixture()
		c := existingCategory(t, "Laptops")
		f.categories.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.categories.On("ExistsByName", mock.Anything, "Laptops", &c.ID).Return(false, nil)
		f.categories.On("Save", mock.Anything, c).Return(nil)

		req := CategoryRequest{Name: "Laptops"}
		req.SetKeys([]string{"name", "description"})
		resp, err := f.service.Update(ctx, c.ID, req)
		require.NoError(t, err)
		assert.Nil(t, resp.Description)
	})

	t.Run("missing record is not found before validation", func(t *testing.T) {
		f := newCategoryFixture()
		id := uuid.New()
		f.categories.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound.WithMessage("Category not found"))

		_, err := f.service.Update(ctx, id, CategoryRequest{Name: ""})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.categories.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("write failure returns in-memory state", func(t *testing.T) {
		f := newCategoryFixture()
		c := existingCategory(t, "Laptops")
		f.categories.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.categories.On("ExistsByName", mock.Anything, "Notebooks", &c.ID).Return(false, nil)
		f.categories.On("Save", mock.Anything, c).Return(shared.ErrAlreadyExists.WithMessage("Category already exists"))

		resp, err := f.service.Update(ctx, c.ID, CategoryRequest{Name: "Notebooks"})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrUpdateFailed)
		assert.Equal(t, "Category already exists", err.Error())
		require.NotNil(t, resp)
		assert.Equal(t, "Notebooks", resp.Name)
		assert.Empty(t, f.events.events)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes unreferenced category", func(t *testing.T) {
		f := newCategoryFixture()
		c := existingCategory(t, "Laptops")
		f.categories.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.assets.On("CountByReference", mock.Anything, inventory.RefCategory, c.ID).Return(int64(0), nil)
		f.categories.On("Delete", mock.Anything, c.ID).Return(nil)

		require.NoError(t, f.service.Delete(ctx, c.ID))
		require.Len(t, f.events.events, 1)
		assert.Equal(t, shared.EventRecordDeleted, f.events.events[0].EventType())
	})

	t.Run("referenced category is rejected", func(t *testing.T) {
		f := newCategoryFixture()
		c := existingCategory(t, "Laptops")
		f.categories.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.assets.On("CountByReference", mock.Anything, inventory.RefCategory, c.ID).Return(int64(3), nil)

		err := f.service.Delete(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrEntityInUse)
		assert.Contains(t, err.Error(), "3 asset(s)")
		f.categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing category", func(t *testing.T) {
		f := newCategoryFixture()
		id := uuid.New()
		f.categories.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, f.service.Delete(ctx, id), shared.ErrNotFound)
	})

	t.Run("unexpected failure becomes delete failed", func(t *testing.T) {
		f := newCategoryFixture()
		c := existingCategory(t, "Laptops")
		boom := errors.New("disk full")
		f.categories.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.assets.On("CountByReference", mock.Anything, inventory.RefCategory, c.ID).Return(int64(0), nil)
		f.categories.On("Delete", mock.Anything, c.ID).Return(boom)

		err := f.service.Delete(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrDeleteFailed)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "Failed to delete category.", err.Error())
	})

	t.Run("restrict violation from the store stays entity in use", func(t *testing.T) {
		f := newCategoryFixture()
		c := existingCategory(t, "Laptops")
		f.categories.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.assets.On("CountByReference", mock.Anything, inventory.RefCategory, c.ID).Return(int64(0), nil)
		f.categories.On("Delete", mock.Anything, c.ID).Return(shared.ErrEntityInUse)

		assert.ErrorIs(t, f.service.Delete(ctx, c.ID), shared.ErrEntityInUse)
	})
}

func TestCategoryService_List(t *testing.T) {
	f := newCategoryFixture()
	a := existingCategory(t, "Desktops")
	b := existingCategory(t, "Laptops")
	filter := support.ListRequest{SearchText: "top"}.Filter()
	f.categories.On("FindAll", mock.Anything, filter).Return([]inventory.Category{*a, *b}, nil)
	f.categories.On("Count", mock.Anything, filter).Return(int64(7), nil)

	page, err := f.service.List(context.Background(), support.ListRequest{SearchText: "top"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Desktops", page.Items[0].Name)
	assert.Equal(t, int64(7), page.Total)
	assert.Equal(t, 5, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)
}
