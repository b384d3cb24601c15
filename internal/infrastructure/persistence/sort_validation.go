package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortColumn maps a requested sort field to its SQL column through a
// whitelist. Unknown or empty fields resolve to the column of defaultField.
func ValidateSortColumn(sortField string, allowed map[string]string, defaultField string) string {
	if col, ok := allowed[strings.ToLower(strings.TrimSpace(sortField))]; ok {
		return col
	}
	return allowed[defaultField]
}

// CategorySortFields contains allowed sort fields for categories
var CategorySortFields = map[string]string{
	"name":        "name",
	"description": "description",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

// ManufacturerSortFields contains allowed sort fields for manufacturers
var ManufacturerSortFields = map[string]string{
	"name":          "name",
	"url":           "url",
	"support_url":   "support_url",
	"support_phone": "support_phone",
	"support_email": "support_email",
	"created_at":    "created_at",
	"updated_at":    "updated_at",
}

// LocationSortFields contains allowed sort fields for locations
var LocationSortFields = map[string]string{
	"name":       "name",
	"address":    "address",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// AssetSortFields contains allowed sort fields for assets. Relation fields
// sort by the joined entity's name.
var AssetSortFields = map[string]string{
	"asset_tag":           "assets.asset_tag",
	"name":                "assets.name",
	"serial_number":       "assets.serial_number",
	"model_name":          "assets.model_name",
	"purchase_date":       "assets.purchase_date",
	"purchase_price":      "assets.purchase_price",
	"status":              "assets.status",
	"created_at":          "assets.created_at",
	"updated_at":          "assets.updated_at",
	"category":            "categories.name",
	"category_id":         "categories.name",
	"manufacturer":        "manufacturers.name",
	"manufacturer_id":     "manufacturers.name",
	"location":            "locations.name",
	"location_id":         "locations.name",
	"assigned_to_user":    "users.name",
	"assigned_to_user_id": "users.name",
}
