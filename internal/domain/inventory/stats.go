package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Totals holds the record count of every entity type
type Totals struct {
	Assets        int64
	Categories    int64
	Users         int64
	Manufacturers int64
	Locations     int64
}

// StatusCount is the number of assets in one status
type StatusCount struct {
	Status AssetStatus
	Total  int64
}

// ReferenceCount is the number of assets grouped by one relation.
// ID and Name are nil for the group of assets without that relation.
type ReferenceCount struct {
	ID    *uuid.UUID
	Name  *string
	Total int64
}

// StatsRepository provides read-only aggregates over the inventory
type StatsRepository interface {
	Totals(ctx context.Context) (Totals, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByReference(ctx context.Context, ref AssetReference) ([]ReferenceCount, error)
}
