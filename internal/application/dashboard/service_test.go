package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Totals(ctx context.Context) (inventory.Totals, error) {
	args := m.Called(ctx)
	return args.Get(0).(inventory.Totals), args.Error(1)
}

func (m *MockStatsRepository) CountByStatus(ctx context.Context) ([]inventory.StatusCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.StatusCount), args.Error(1)
}

func (m *MockStatsRepository) CountByReference(ctx context.Context, ref inventory.AssetReference) ([]inventory.ReferenceCount, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).([]inventory.ReferenceCount), args.Error(1)
}

func strPtr(s string) *string { return &s }

func expectStats(repo *MockStatsRepository) uuid.UUID {
	laptops := uuid.New()
	repo.On("Totals", mock.Anything).Return(inventory.Totals{Assets: 5, Categories: 2, Users: 3, Manufacturers: 1, Locations: 1}, nil)
	repo.On("CountByStatus", mock.Anything).Return([]inventory.StatusCount{
		{Status: inventory.AssetStatusDeployed, Total: 3},
		{Status: inventory.AssetStatusBroken, Total: 2},
	}, nil)
	repo.On("CountByReference", mock.Anything, inventory.RefCategory).Return([]inventory.ReferenceCount{
		{ID: &laptops, Name: strPtr("Laptops"), Total: 4},
		{Total: 1},
	}, nil)
	repo.On("CountByReference", mock.Anything, inventory.RefLocation).Return([]inventory.ReferenceCount{{Total: 5}}, nil)
	repo.On("CountByReference", mock.Anything, inventory.RefAssignedUser).Return([]inventory.ReferenceCount{{Total: 5}}, nil)
	return laptops
}

func TestService_Stats(t *testing.T) {
	repo := new(MockStatsRepository)
	laptops := expectStats(repo)
	svc := NewService(repo, nil, 0, zap.NewNop())

	resp, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, TotalsResponse{TotalAssets: 5, TotalCategories: 2, TotalUsers: 3, TotalManufacturers: 1, TotalLocations: 1}, resp.Totals)
	assert.Equal(t, []StatusTotal{{Status: "Deployed", Total: 3}, {Status: "Broken", Total: 2}}, resp.Charts.AssetsByStatus)
	require.Len(t, resp.Charts.AssetsByCategory, 2)
	assert.Equal(t, &laptops, resp.Charts.AssetsByCategory[0].CategoryID)
	assert.Nil(t, resp.Charts.AssetsByCategory[1].CategoryID)
	assert.Nil(t, resp.Charts.AssetsByCategory[1].Name)
	assert.Nil(t, resp.Charts.AssetsByLocation[0].LocationID)
	assert.Equal(t, int64(5), resp.Charts.AssetsByAssignedUser[0].Total)
}

func TestService_StatsCachedUntilInvalidated(t *testing.T) {
	repo := new(MockStatsRepository)
	expectStats(repo)
	store := cache.NewMemoryStore(time.Minute)
	defer store.Close()
	svc := NewService(repo, store, 30*time.Second, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Stats(ctx)
	require.NoError(t, err)
	second, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "Totals", 1)

	require.NoError(t, svc.Handle(ctx, shared.NewRecordChanged(shared.EventRecordCreated, "Asset", uuid.New())))
	_, err = svc.Stats(ctx)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Totals", 2)
}

func TestService_StatsError(t *testing.T) {
	repo := new(MockStatsRepository)
	repo.On("Totals", mock.Anything).Return(inventory.Totals{}, errors.New("db down"))

	_, err := NewService(repo, nil, 0, zap.NewNop()).Stats(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestService_EventTypes(t *testing.T) {
	svc := NewService(new(MockStatsRepository), nil, 0, zap.NewNop())
	assert.ElementsMatch(t, shared.RecordEventTypes(), svc.EventTypes())
}
