package persistence

import (
	"context"
	"fmt"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var referenceTables = map[inventory.AssetReference]string{
	inventory.RefCategory:     "categories",
	inventory.RefManufacturer: "manufacturers",
	inventory.RefLocation:     "locations",
	inventory.RefAssignedUser: "users",
}

const totalsQuery = `SELECT
	(SELECT COUNT(*) FROM assets) AS assets,
	(SELECT COUNT(*) FROM categories) AS categories,
	(SELECT COUNT(*) FROM users) AS users,
	(SELECT COUNT(*) FROM manufacturers) AS manufacturers,
	(SELECT COUNT(*) FROM locations) AS locations`

// GormStatsRepository computes dashboard aggregates with GROUP BY queries
type GormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GormStatsRepository
func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// Totals returns the record count of every entity type
func (r *GormStatsRepository) Totals(ctx context.Context) (inventory.Totals, error) {
	var totals inventory.Totals
	if err := conn(ctx, r.db).Raw(totalsQuery).Scan(&totals).Error; err != nil {
		return inventory.Totals{}, fmt.Errorf("failed to count totals: %w", err)
	}
	return totals, nil
}

// CountByStatus groups assets by status
func (r *GormStatsRepository) CountByStatus(ctx context.Context) ([]inventory.StatusCount, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := conn(ctx, r.db).Table("assets").
		Select("status, COUNT(*) AS total").
		Group("status").
		Order("total DESC").Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count assets by status: %w", err)
	}
	counts := make([]inventory.StatusCount, len(rows))
	for i, row := range rows {
		counts[i] = inventory.StatusCount{Status: inventory.AssetStatus(row.Status), Total: row.Total}
	}
	return counts, nil
}

// CountByReference groups assets by one relation joined with its display name.
// Assets without the relation form a group with nil id and name.
func (r *GormStatsRepository) CountByReference(ctx context.Context, ref inventory.AssetReference) ([]inventory.ReferenceCount, error) {
	table, ok := referenceTables[ref]
	if !ok {
		return nil, fmt.Errorf("unknown asset reference %q", ref)
	}
	column := "assets." + string(ref)

	var rows []struct {
		ID    *uuid.UUID
		Name  *string
		Total int64
	}
	err := conn(ctx, r.db).Table("assets").
		Select(column + " AS id, " + table + ".name AS name, COUNT(*) AS total").
		Joins("LEFT JOIN " + table + " ON " + table + ".id = " + column).
		Group(column + ", " + table + ".name").
		Order("total DESC").Order(table + ".name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count assets by %s: %w", ref, err)
	}
	counts := make([]inventory.ReferenceCount, len(rows))
	for i, row := range rows {
		counts[i] = inventory.ReferenceCount{ID: row.ID, Name: row.Name, Total: row.Total}
	}
	return counts, nil
}

var _ inventory.StatsRepository = (*GormStatsRepository)(nil)
