package seed

import (
	"context"
	"testing"
	"time"

	"github.com/aims/backend/internal/domain/identity"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/config"
	"github.com/aims/backend/internal/infrastructure/persistence"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := persistence.Open(sqlite.Open("file::memory:?_foreign_keys=on"), logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, persistence.AutoMigrate(db))
	return db
}

func newRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         persistence.NewGormUserRepository(db),
		Categories:    persistence.NewGormCategoryRepository(db),
		Manufacturers: persistence.NewGormManufacturerRepository(db),
		Locations:     persistence.NewGormLocationRepository(db),
		Assets:        persistence.NewGormAssetRepository(db),
	}
}

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func testSeedConfig() config.SeedConfig {
	return config.SeedConfig{
		DefaultPassword: "password",
		Users:           3,
		Categories:      5,
		Manufacturers:   4,
		Locations:       8,
		Assets:          25,
	}
}

func TestSeeder_Run(t *testing.T) {
	db := setupDB(t)
	repos := newRepositories(db)
	ctx := context.Background()

	s := New(repos, testSeedConfig(), zap.NewNop(),
		WithFaker(gofakeit.New(42)),
		WithClock(func() time.Time { return fixedNow }),
	)
	sum, err := s.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, sum.Users)
	assert.Equal(t, 5, sum.Categories)
	assert.Equal(t, 8, sum.Locations)
	assert.Positive(t, sum.Assets)
	// every generated record is either created or skipped
	attempted := 6 + 5 + 4 + 8 + 25
	assert.Equal(t, attempted, sum.Users+sum.Categories+sum.Manufacturers+sum.Locations+sum.Assets+sum.Skipped)

	count, err := repos.Assets.Count(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(sum.Assets), count)

	t.Run("default users can log in with the configured password", func(t *testing.T) {
		for _, du := range DefaultUsers {
			user, err := repos.Users.FindByEmail(ctx, du.Email)
			require.NoError(t, err, du.Email)
			assert.Equal(t, du.Role, user.Role)
			assert.True(t, user.CheckPassword("password"))
		}
	})

	t.Run("assets follow the generated formats", func(t *testing.T) {
		assets, err := repos.Assets.FindAll(ctx, shared.Filter{Page: 1, PageSize: 100})
		require.NoError(t, err)
		require.NotEmpty(t, assets)

		earliest := time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
		for _, a := range assets {
			assert.Regexp(t, `^AST-\d{5}$`, a.AssetTag)
			require.NotNil(t, a.SerialNumber)
			assert.Regexp(t, `^SN-[A-Z]{2}\d{5}$`, *a.SerialNumber)
			require.NotNil(t, a.ModelName)
			assert.Regexp(t, `^Model-[A-Z]{2}\d{2}$`, *a.ModelName)
			assert.True(t, a.Status.IsValid())

			require.NotNil(t, a.PurchaseDate)
			assert.False(t, a.PurchaseDate.Before(earliest))
			assert.False(t, a.PurchaseDate.After(fixedNow))

			require.NotNil(t, a.PurchasePrice)
			assert.True(t, a.PurchasePrice.GreaterThanOrEqual(decimal.RequireFromString("100")))
			assert.True(t, a.PurchasePrice.LessThanOrEqual(decimal.RequireFromString("5000")))

			assert.NotNil(t, a.CategoryID)
			assert.NotNil(t, a.LocationID)
		}
	})
}

func TestSeeder_Run_SkipsExistingRecords(t *testing.T) {
	db := setupDB(t)
	repos := newRepositories(db)
	ctx := context.Background()

	admin, err := identity.NewUser("Existing Admin", "admin@aims.com", identity.RoleSuperAdmin, "password")
	require.NoError(t, err)
	require.NoError(t, repos.Users.Create(ctx, admin))

	cfg := testSeedConfig()
	cfg.Users, cfg.Manufacturers, cfg.Assets = 0, 0, 0
	_, err = New(repos, cfg, zap.NewNop(), WithFaker(gofakeit.New(7))).Run(ctx)
	require.NoError(t, err)

	sum, err := New(repos, cfg, zap.NewNop(), WithFaker(gofakeit.New(7))).Run(ctx)
	require.NoError(t, err)

	assert.Zero(t, sum.Users)
	assert.Zero(t, sum.Categories)
	assert.Zero(t, sum.Locations)
	assert.Equal(t, 3+5+8, sum.Skipped)

	stored, err := repos.Users.FindByEmail(ctx, "admin@aims.com")
	require.NoError(t, err)
	assert.Equal(t, "Existing Admin", stored.Name)
}

func TestPick(t *testing.T) {
	f := gofakeit.New(1)

	got := pick(f, officeLocations, 3)
	assert.Len(t, got, 3)
	for _, name := range got {
		assert.Contains(t, officeLocations, name)
	}

	all := pick(f, officeLocations, 50)
	assert.ElementsMatch(t, officeLocations, all)
}
