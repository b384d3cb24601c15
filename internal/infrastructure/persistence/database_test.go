package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aims/backend/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm/logger"
)

func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	return &Database{DB: db}, mock
}

func TestDatabase_Transaction(t *testing.T) {
	t.Run("commits and routes repository calls through the transaction", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		repo := NewGormCategoryRepository(database.DB)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "categories"`)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := database.Transaction(context.Background(), func(ctx context.Context) error {
			c, err := inventory.NewCategory("Laptop", nil)
			require.NoError(t, err)
			return repo.Create(ctx, c)
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := database.Transaction(context.Background(), func(ctx context.Context) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested calls join the outer transaction", func(t *testing.T) {
		database, mock := newMockDatabase(t)

		mock.ExpectBegin()
		mock.ExpectCommit()

		calls := 0
		err := database.Transaction(context.Background(), func(ctx context.Context) error {
			return database.Transaction(ctx, func(ctx context.Context) error {
				calls++
				return nil
			})
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDatabase_Ping(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	// gorm pings once while opening
	mock.ExpectPing()
	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB, DriverName: "postgres"}), logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	mock.ExpectPing()
	database := &Database{DB: db}
	assert.NoError(t, database.Ping(context.Background()))

	stats, err := database.Stats()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.OpenConnections, 0)
}

func TestGormStatsRepository_TotalsQuery(t *testing.T) {
	database, mock := newMockDatabase(t)
	stats := NewGormStatsRepository(database.DB)

	rows := sqlmock.NewRows([]string{"assets", "categories", "users", "manufacturers", "locations"}).
		AddRow(200, 20, 23, 20, 8)
	mock.ExpectQuery(regexp.QuoteMeta(`(SELECT COUNT(*) FROM assets) AS assets`)).WillReturnRows(rows)

	totals, err := stats.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, inventory.Totals{Assets: 200, Categories: 20, Users: 23, Manufacturers: 20, Locations: 8}, totals)
	assert.NoError(t, mock.ExpectationsWereMet())
}
