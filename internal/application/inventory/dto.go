package inventory

import (
	"time"

	"github.com/aims/backend/internal/application/support"
	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/domain/shared/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Category DTOs
// =============================================================================

// CategoryRequest is the body of a category create or update
type CategoryRequest struct {
	support.Presence `json:"-"`

	Name        string  `json:"name" example:"Laptops"`
	Description *string `json:"description" example:"Portable computers"`
}

// withStored keeps the stored value of every optional field the body left out
func (r CategoryRequest) withStored(c *inventory.Category) CategoryRequest {
	if !r.Sent("description") {
		r.Description = c.Description
	}
	return r
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *inventory.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// =============================================================================
// Manufacturer DTOs
// =============================================================================

// ManufacturerRequest is the body of a manufacturer create or update
type ManufacturerRequest struct {
	support.Presence `json:"-"`

	Name         string  `json:"name" example:"Dell"`
	URL          *string `json:"url" example:"https://www.dell.com"`
	SupportURL   *string `json:"support_url" example:"https://www.dell.com/support"`
	SupportPhone *string `json:"support_phone" example:"+1-800-624-9897"`
	SupportEmail *string `json:"support_email" example:"support@dell.com"`
}

// withStored keeps the stored value of every optional field the body left out
func (r ManufacturerRequest) withStored(m *inventory.Manufacturer) ManufacturerRequest {
	if !r.Sent("url") {
		r.URL = m.URL
	}
	if !r.Sent("support_url") {
		r.SupportURL = m.SupportURL
	}
	if !r.Sent("support_phone") {
		r.SupportPhone = m.SupportPhone
	}
	if !r.Sent("support_email") {
		r.SupportEmail = m.SupportEmail
	}
	return r
}

func (r ManufacturerRequest) contact() inventory.ManufacturerContact {
	return inventory.ManufacturerContact{
		URL:          r.URL,
		SupportURL:   r.SupportURL,
		SupportPhone: r.SupportPhone,
		SupportEmail: r.SupportEmail,
	}
}

// ManufacturerResponse represents a manufacturer in API responses
type ManufacturerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	URL          *string   `json:"url"`
	SupportURL   *string   `json:"support_url"`
	SupportPhone *string   `json:"support_phone"`
	SupportEmail *string   `json:"support_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToManufacturerResponse converts a domain Manufacturer to ManufacturerResponse
func ToManufacturerResponse(m *inventory.Manufacturer) ManufacturerResponse {
	return ManufacturerResponse{
		ID:           m.ID,
		Name:         m.Name,
		URL:          m.URL,
		SupportURL:   m.SupportURL,
		SupportPhone: m.SupportPhone,
		SupportEmail: m.SupportEmail,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// =============================================================================
// Location DTOs
// =============================================================================

// LocationRequest is the body of a location create or update
type LocationRequest struct {
	support.Presence `json:"-"`

	Name    string  `json:"name" example:"Head Office"`
	Address *string `json:"address" example:"12 Market Street"`
}

// withStored keeps the stored address when the body left it out
func (r LocationRequest) withStored(l *inventory.Location) LocationRequest {
	if !r.Sent("address") {
		r.Address = l.Address
	}
	return r
}

// LocationResponse represents a location in API responses
type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToLocationResponse converts a domain Location to LocationResponse
func ToLocationResponse(l *inventory.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// =============================================================================
// Asset DTOs
// =============================================================================

// AssetRequest is the body of an asset create or update. Relation ids are
// strings so an unknown or malformed id is reported as a field error.
type AssetRequest struct {
	support.Presence `json:"-"`

	AssetTag         string           `json:"asset_tag" example:"AST-00001"`
	Name             string           `json:"name" example:"Dell Latitude 7440"`
	SerialNumber     *string          `json:"serial_number" example:"SN-AB12345"`
	ModelName        *string          `json:"model_name" example:"Latitude 7440"`
	PurchaseDate     *string          `json:"purchase_date" example:"2024-03-18"`
	PurchasePrice    *decimal.Decimal `json:"purchase_price" swaggertype:"string" example:"1299.00"`
	Status           string           `json:"status" example:"Deployed"`
	Notes            *string          `json:"notes"`
	CategoryID       *string          `json:"category_id"`
	ManufacturerID   *string          `json:"manufacturer_id"`
	LocationID       *string          `json:"location_id"`
	AssignedToUserID *string          `json:"assigned_to_user_id"`
}

// withStored keeps the stored value of every nullable field the body left
// out. Required fields are never filled in, so leaving one out still fails
// validation.
func (r AssetRequest) withStored(a *inventory.Asset) AssetRequest {
	if !r.Sent("serial_number") {
		r.SerialNumber = a.SerialNumber
	}
	if !r.Sent("model_name") {
		r.ModelName = a.ModelName
	}
	if !r.Sent("purchase_date") {
		r.PurchaseDate = nil
		if a.PurchaseDate != nil {
			d := a.PurchaseDate.Format(validation.DateLayout)
			r.PurchaseDate = &d
		}
	}
	if !r.Sent("purchase_price") {
		r.PurchasePrice = a.PurchasePrice
	}
	if !r.Sent("notes") {
		r.Notes = a.Notes
	}
	if !r.Sent("manufacturer_id") {
		r.ManufacturerID = idString(a.ManufacturerID)
	}
	if !r.Sent("location_id") {
		r.LocationID = idString(a.LocationID)
	}
	if !r.Sent("assigned_to_user_id") {
		r.AssignedToUserID = idString(a.AssignedToUserID)
	}
	return r
}

// attributes converts a validated request to domain attributes
func (r AssetRequest) attributes() inventory.AssetAttributes {
	attrs := inventory.AssetAttributes{
		AssetTag:         r.AssetTag,
		Name:             r.Name,
		SerialNumber:     r.SerialNumber,
		ModelName:        r.ModelName,
		PurchasePrice:    r.PurchasePrice,
		Status:           inventory.AssetStatus(r.Status),
		Notes:            r.Notes,
		CategoryID:       parseOptionalID(r.CategoryID),
		ManufacturerID:   parseOptionalID(r.ManufacturerID),
		LocationID:       parseOptionalID(r.LocationID),
		AssignedToUserID: parseOptionalID(r.AssignedToUserID),
	}
	if d := shared.NilIfBlank(r.PurchaseDate); d != nil {
		if t, err := validation.ParseDate(*d); err == nil {
			attrs.PurchaseDate = &t
		}
	}
	return attrs
}

// parseOptionalID returns nil for a missing, blank or malformed id
func parseOptionalID(s *string) *uuid.UUID {
	v := shared.NilIfBlank(s)
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// NameRef is the nested summary of a related record. Name is null when the
// relation is unset.
type NameRef struct {
	Name *string `json:"name"`
}

// AssetResponse represents an asset with its resolved relations
type AssetResponse struct {
	ID               uuid.UUID  `json:"id"`
	AssetTag         string     `json:"asset_tag"`
	Name             string     `json:"name"`
	SerialNumber     *string    `json:"serial_number"`
	ModelName        *string    `json:"model_name"`
	PurchaseDate     *string    `json:"purchase_date" example:"2024-03-18"`
	PurchasePrice    *string    `json:"purchase_price" example:"1299.00"`
	Status           string     `json:"status"`
	Notes            *string    `json:"notes"`
	CategoryID       *uuid.UUID `json:"category_id"`
	ManufacturerID   *uuid.UUID `json:"manufacturer_id"`
	LocationID       *uuid.UUID `json:"location_id"`
	AssignedToUserID *uuid.UUID `json:"assigned_to_user_id"`
	Category         NameRef    `json:"category"`
	Manufacturer     NameRef    `json:"manufacturer"`
	Location         NameRef    `json:"location"`
	AssignedToUser   *NameRef   `json:"assigned_to_user"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ToAssetResponse converts asset details to AssetResponse
func ToAssetResponse(d *inventory.AssetDetails) AssetResponse {
	resp := AssetResponse{
		ID:               d.ID,
		AssetTag:         d.AssetTag,
		Name:             d.Name,
		SerialNumber:     d.SerialNumber,
		ModelName:        d.ModelName,
		Status:           string(d.Status),
		Notes:            d.Notes,
		CategoryID:       d.CategoryID,
		ManufacturerID:   d.ManufacturerID,
		LocationID:       d.LocationID,
		AssignedToUserID: d.AssignedToUserID,
		Category:         NameRef{Name: d.CategoryName},
		Manufacturer:     NameRef{Name: d.ManufacturerName},
		Location:         NameRef{Name: d.LocationName},
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if d.PurchaseDate != nil {
		s := d.PurchaseDate.Format(validation.DateLayout)
		resp.PurchaseDate = &s
	}
	if d.PurchasePrice != nil {
		s := d.PurchasePrice.StringFixed(inventory.PriceScale)
		resp.PurchasePrice = &s
	}
	if d.AssignedToUserID != nil {
		resp.AssignedToUser = &NameRef{Name: d.AssignedToUserName}
	}
	return resp
}

// OptionResponse is one entry of a pick list
type OptionResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AssetOptionsResponse holds the pick lists used by asset forms
type AssetOptionsResponse struct {
	Categories    []OptionResponse `json:"categories"`
	Manufacturers []OptionResponse `json:"manufacturers"`
	Locations     []OptionResponse `json:"locations"`
	Users         []OptionResponse `json:"users"`
}

func toOptions(refs []shared.NamedRef) []OptionResponse {
	out := make([]OptionResponse, len(refs))
	for i, r := range refs {
		out[i] = OptionResponse{ID: r.ID, Name: r.Name}
	}
	return out
}
