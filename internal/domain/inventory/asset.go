package inventory

import (
	"strings"
	"time"

	"github.com/aims/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of an asset
type AssetStatus string

const (
	AssetStatusDeployed    AssetStatus = "Deployed"
	AssetStatusInStorage   AssetStatus = "InStorage"
	AssetStatusMaintenance AssetStatus = "Maintenance"
	AssetStatusRetired     AssetStatus = "Retired"
	AssetStatusBroken      AssetStatus = "Broken"
)

// AssetStatuses lists every valid status in display order.
func AssetStatuses() []AssetStatus {
	return []AssetStatus{
		AssetStatusDeployed,
		AssetStatusInStorage,
		AssetStatusMaintenance,
		AssetStatusRetired,
		AssetStatusBroken,
	}
}

// IsValid reports whether s is a known status
func (s AssetStatus) IsValid() bool {
	for _, known := range AssetStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// PriceScale is the number of fractional digits kept for purchase prices.
const PriceScale = 2

// AssetAttributes holds the writable fields of an asset.
type AssetAttributes struct {
	AssetTag         string
	Name             string
	SerialNumber     *string
	ModelName        *string
	PurchaseDate     *time.Time
	PurchasePrice    *decimal.Decimal
	Status           AssetStatus
	Notes            *string
	CategoryID       *uuid.UUID
	ManufacturerID   *uuid.UUID
	LocationID       *uuid.UUID
	AssignedToUserID *uuid.UUID
}

// Asset is a tracked physical item identified by a unique tag
type Asset struct {
	shared.BaseEntity
	AssetAttributes
}

// NewAsset creates an asset from validated attributes
func NewAsset(attrs AssetAttributes) (*Asset, error) {
	a := &Asset{BaseEntity: shared.NewBaseEntity()}
	if err := a.apply(attrs); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the writable fields of the asset
func (a *Asset) Update(attrs AssetAttributes) error {
	if err := a.apply(attrs); err != nil {
		return err
	}
	a.Touch()
	return nil
}

func (a *Asset) apply(attrs AssetAttributes) error {
	attrs.AssetTag = strings.TrimSpace(attrs.AssetTag)
	attrs.Name = strings.TrimSpace(attrs.Name)
	if attrs.AssetTag == "" {
		return shared.NewDomainError("INVALID_ASSET_TAG", "Asset tag cannot be empty")
	}
	if attrs.Name == "" {
		return shared.NewDomainError("INVALID_NAME", "Asset name cannot be empty")
	}
	if !attrs.Status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown asset status: "+string(attrs.Status))
	}
	if attrs.PurchasePrice != nil {
		if attrs.PurchasePrice.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
		}
		p := attrs.PurchasePrice.Round(PriceScale)
		attrs.PurchasePrice = &p
	}
	if attrs.PurchaseDate != nil {
		y, m, d := attrs.PurchaseDate.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		attrs.PurchaseDate = &day
	}
	attrs.SerialNumber = shared.NilIfBlank(attrs.SerialNumber)
	attrs.ModelName = shared.NilIfBlank(attrs.ModelName)
	attrs.Notes = shared.NilIfBlank(attrs.Notes)
	a.AssetAttributes = attrs
	return nil
}

// IsAssigned reports whether the asset has an assignee
func (a *Asset) IsAssigned() bool {
	return a.AssignedToUserID != nil
}

// AssetDetails is an asset together with the display names of its relations.
// A nil name means the relation is unset.
type AssetDetails struct {
	Asset
	CategoryName       *string
	ManufacturerName   *string
	LocationName       *string
	AssignedToUserName *string
}
