package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/aims/backend/internal/domain/identity"
	"github.com/aims/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory sqlite database with the schema applied.
// A single connection keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(sqlite.Open("file::memory:?_foreign_keys=on"), logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func strPtr(s string) *string { return &s }

type fixtures struct {
	ctx           context.Context
	categories    *GormCategoryRepository
	manufacturers *GormManufacturerRepository
	locations     *GormLocationRepository
	users         *GormUserRepository
	assets        *GormAssetRepository
}

func newFixtures(t *testing.T, db *gorm.DB) *fixtures {
	return &fixtures{
		ctx:           context.Background(),
		categories:    NewGormCategoryRepository(db),
		manufacturers: NewGormManufacturerRepository(db),
		locations:     NewGormLocationRepository(db),
		users:         NewGormUserRepository(db),
		assets:        NewGormAssetRepository(db),
	}
}

func (f *fixtures) category(t *testing.T, name string) *inventory.Category {
	t.Helper()
	c, err := inventory.NewCategory(name, nil)
	require.NoError(t, err)
	require.NoError(t, f.categories.Create(f.ctx, c))
	return c
}

func (f *fixtures) manufacturer(t *testing.T, name string) *inventory.Manufacturer {
	t.Helper()
	m, err := inventory.NewManufacturer(name, inventory.ManufacturerContact{})
	require.NoError(t, err)
	require.NoError(t, f.manufacturers.Create(f.ctx, m))
	return m
}

func (f *fixtures) location(t *testing.T, name string) *inventory.Location {
	t.Helper()
	l, err := inventory.NewLocation(name, nil)
	require.NoError(t, err)
	require.NoError(t, f.locations.Create(f.ctx, l))
	return l
}

func (f *fixtures) user(t *testing.T, name, email string) *identity.User {
	t.Helper()
	u := &identity.User{Name: name, Email: email, Role: identity.RoleInventoryUser, PasswordHash: "x"}
	u.ID = uuid.New()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	require.NoError(t, f.users.Create(f.ctx, u))
	return u
}

func (f *fixtures) asset(t *testing.T, tag, name string, mutate func(*inventory.AssetAttributes)) *inventory.Asset {
	t.Helper()
	attrs := inventory.AssetAttributes{
		AssetTag: tag,
		Name:     name,
		Status:   inventory.AssetStatusInStorage,
	}
	if mutate != nil {
		mutate(&attrs)
	}
	a, err := inventory.NewAsset(attrs)
	require.NoError(t, err)
	require.NoError(t, f.assets.Create(f.ctx, a))
	return a
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
