package dashboard

import (
	"github.com/aims/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// StatsResponse is the dashboard payload
type StatsResponse struct {
	Totals TotalsResponse `json:"totals"`
	Charts ChartsResponse `json:"charts"`
}

// TotalsResponse holds the record count of every entity type
type TotalsResponse struct {
	TotalAssets        int64 `json:"total_assets"`
	TotalCategories    int64 `json:"total_categories"`
	TotalUsers         int64 `json:"total_users"`
	TotalManufacturers int64 `json:"total_manufacturers"`
	TotalLocations     int64 `json:"total_locations"`
}

// ChartsResponse holds the group-by breakdowns of assets
type ChartsResponse struct {
	AssetsByStatus       []StatusTotal   `json:"assets_by_status"`
	AssetsByCategory     []CategoryTotal `json:"assets_by_category"`
	AssetsByLocation     []LocationTotal `json:"assets_by_location"`
	AssetsByAssignedUser []UserTotal     `json:"assets_by_assigned_user"`
}

// StatusTotal is the number of assets in one status
type StatusTotal struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// CategoryTotal is the number of assets in one category. ID and name are null for uncategorized assets.
type CategoryTotal struct {
	CategoryID *uuid.UUID `json:"category_id"`
	Name       *string    `json:"name"`
	Total      int64      `json:"total"`
}

// LocationTotal is the number of assets at one location
type LocationTotal struct {
	LocationID *uuid.UUID `json:"location_id"`
	Name       *string    `json:"name"`
	Total      int64      `json:"total"`
}

// UserTotal is the number of assets assigned to one user
type UserTotal struct {
	AssignedToUserID *uuid.UUID `json:"assigned_to_user_id"`
	Name             *string    `json:"name"`
	Total            int64      `json:"total"`
}

func toTotals(t inventory.Totals) TotalsResponse {
	return TotalsResponse{
		TotalAssets:        t.Assets,
		TotalCategories:    t.Categories,
		TotalUsers:         t.Users,
		TotalManufacturers: t.Manufacturers,
		TotalLocations:     t.Locations,
	}
}

func mapCounts[T any](counts []inventory.ReferenceCount, fn func(inventory.ReferenceCount) T) []T {
	out := make([]T, len(counts))
	for i, c := range counts {
		out[i] = fn(c)
	}
	return out
}
