package inventory

import (
	"context"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Category), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *inventory.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *inventory.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) ListRefs(ctx context.Context) ([]shared.NamedRef, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.NamedRef), args.Error(1)
}

type MockManufacturerRepository struct {
	mock.Mock
}

func (m *MockManufacturerRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Manufacturer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Manufacturer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockManufacturerRepository) Create(ctx context.Context, manufacturer *inventory.Manufacturer) error {
	return m.Called(ctx, manufacturer).Error(0)
}

func (m *MockManufacturerRepository) Save(ctx context.Context, manufacturer *inventory.Manufacturer) error {
	return m.Called(ctx, manufacturer).Error(0)
}

func (m *MockManufacturerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockManufacturerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockManufacturerRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockManufacturerRepository) ListRefs(ctx context.Context) ([]shared.NamedRef, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.NamedRef), args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Location), args.Error(1)
}

func (m *MockLocationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Location, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Location), args.Error(1)
}

func (m *MockLocationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationRepository) Create(ctx context.Context, location *inventory.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockLocationRepository) Save(ctx context.Context, location *inventory.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLocationRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocationRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocationRepository) ListRefs(ctx context.Context) ([]shared.NamedRef, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.NamedRef), args.Error(1)
}

type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindDetailsByID(ctx context.Context, id uuid.UUID) (*inventory.AssetDetails, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, uuid.UUID) *inventory.AssetDetails); ok {
		return fn(ctx, id), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.AssetDetails), args.Error(1)
}

func (m *MockAssetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.AssetDetails, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.AssetDetails), args.Error(1)
}

func (m *MockAssetRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *inventory.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) Save(ctx context.Context, asset *inventory.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAssetRepository) ExistsByAssetTag(ctx context.Context, tag string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, tag, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssetRepository) ExistsBySerialNumber(ctx context.Context, serial string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, serial, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssetRepository) CountByReference(ctx context.Context, ref inventory.AssetReference, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, ref, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserDirectory) ListRefs(ctx context.Context) ([]shared.NamedRef, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.NamedRef), args.Error(1)
}

// passthroughTx runs the unit of work directly and counts invocations
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

// capturePublisher records published events
type capturePublisher struct {
	events []shared.DomainEvent
}

func (c *capturePublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	c.events = append(c.events, events...)
	return nil
}

func strPtr(s string) *string { return &s }
