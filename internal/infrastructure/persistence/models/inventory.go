package models

import (
	"time"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for categories
type CategoryModel struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:uq_categories_name"`
	Description *string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the model to a domain category
func (m *CategoryModel) ToDomain() *inventory.Category {
	return &inventory.Category{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain populates the model from a domain category
func (m *CategoryModel) FromDomain(c *inventory.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Description = c.Description
}

// CategoryModelFromDomain creates a persistence model from a domain category
func CategoryModelFromDomain(c *inventory.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// ManufacturerModel is the persistence model for manufacturers
type ManufacturerModel struct {
	BaseModel
	Name         string  `gorm:"type:varchar(255);not null;uniqueIndex:uq_manufacturers_name"`
	URL          *string `gorm:"column:url;type:varchar(255)"`
	SupportURL   *string `gorm:"column:support_url;type:varchar(255)"`
	SupportPhone *string `gorm:"type:varchar(50)"`
	SupportEmail *string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (ManufacturerModel) TableName() string {
	return "manufacturers"
}

// ToDomain converts the model to a domain manufacturer
func (m *ManufacturerModel) ToDomain() *inventory.Manufacturer {
	return &inventory.Manufacturer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		ManufacturerContact: inventory.ManufacturerContact{
			URL:          m.URL,
			SupportURL:   m.SupportURL,
			SupportPhone: m.SupportPhone,
			SupportEmail: m.SupportEmail,
		},
	}
}

// FromDomain populates the model from a domain manufacturer
func (m *ManufacturerModel) FromDomain(v *inventory.Manufacturer) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.Name = v.Name
	m.URL = v.URL
	m.SupportURL = v.SupportURL
	m.SupportPhone = v.SupportPhone
	m.SupportEmail = v.SupportEmail
}

// ManufacturerModelFromDomain creates a persistence model from a domain manufacturer
func ManufacturerModelFromDomain(v *inventory.Manufacturer) *ManufacturerModel {
	m := &ManufacturerModel{}
	m.FromDomain(v)
	return m
}

// LocationModel is the persistence model for locations
type LocationModel struct {
	BaseModel
	Name    string  `gorm:"type:varchar(255);not null;uniqueIndex:uq_locations_name"`
	Address *string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (LocationModel) TableName() string {
	return "locations"
}

// ToDomain converts the model to a domain location
func (m *LocationModel) ToDomain() *inventory.Location {
	return &inventory.Location{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Address:    m.Address,
	}
}

// FromDomain populates the model from a domain location
func (m *LocationModel) FromDomain(l *inventory.Location) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.Name = l.Name
	m.Address = l.Address
}

// LocationModelFromDomain creates a persistence model from a domain location
func LocationModelFromDomain(l *inventory.Location) *LocationModel {
	m := &LocationModel{}
	m.FromDomain(l)
	return m
}

// AssetModel is the persistence model for assets
type AssetModel struct {
	BaseModel
	AssetTag         string           `gorm:"type:varchar(255);not null;uniqueIndex:uq_assets_asset_tag"`
	Name             string           `gorm:"type:varchar(255);not null;index"`
	SerialNumber     *string          `gorm:"type:varchar(255);uniqueIndex:uq_assets_serial_number"`
	ModelName        *string          `gorm:"type:varchar(255)"`
	PurchaseDate     *time.Time       `gorm:"type:date"`
	PurchasePrice    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status           string           `gorm:"type:varchar(20);not null;index"`
	Notes            *string          `gorm:"type:text"`
	CategoryID       *uuid.UUID       `gorm:"type:uuid;index"`
	ManufacturerID   *uuid.UUID       `gorm:"type:uuid;index"`
	LocationID       *uuid.UUID       `gorm:"type:uuid;index"`
	AssignedToUserID *uuid.UUID       `gorm:"type:uuid;index"`

	// Associations exist only so AutoMigrate emits restricting foreign keys.
	// Reads resolve relation names through explicit joins.
	Category       *CategoryModel     `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Manufacturer   *ManufacturerModel `gorm:"foreignKey:ManufacturerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Location       *LocationModel     `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AssignedToUser *UserModel         `gorm:"foreignKey:AssignedToUserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (AssetModel) TableName() string {
	return "assets"
}

// ToDomain converts the model to a domain asset
func (m *AssetModel) ToDomain() *inventory.Asset {
	return &inventory.Asset{
		BaseEntity: m.BaseModel.ToDomain(),
		AssetAttributes: inventory.AssetAttributes{
			AssetTag:         m.AssetTag,
			Name:             m.Name,
			SerialNumber:     m.SerialNumber,
			ModelName:        m.ModelName,
			PurchaseDate:     m.PurchaseDate,
			PurchasePrice:    m.PurchasePrice,
			Status:           inventory.AssetStatus(m.Status),
			Notes:            m.Notes,
			CategoryID:       m.CategoryID,
			ManufacturerID:   m.ManufacturerID,
			LocationID:       m.LocationID,
			AssignedToUserID: m.AssignedToUserID,
		},
	}
}

// FromDomain populates the model from a domain asset
func (m *AssetModel) FromDomain(a *inventory.Asset) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.AssetTag = a.AssetTag
	m.Name = a.Name
	m.SerialNumber = a.SerialNumber
	m.ModelName = a.ModelName
	m.PurchaseDate = a.PurchaseDate
	m.PurchasePrice = a.PurchasePrice
	m.Status = string(a.Status)
	m.Notes = a.Notes
	m.CategoryID = a.CategoryID
	m.ManufacturerID = a.ManufacturerID
	m.LocationID = a.LocationID
	m.AssignedToUserID = a.AssignedToUserID
}

// AssetModelFromDomain creates a persistence model from a domain asset
func AssetModelFromDomain(a *inventory.Asset) *AssetModel {
	m := &AssetModel{}
	m.FromDomain(a)
	return m
}

// AssetDetailsRow is the scan target of the joined asset read query
type AssetDetailsRow struct {
	AssetModel
	CategoryName       *string
	ManufacturerName   *string
	LocationName       *string
	AssignedToUserName *string
}

// ToDomain converts the row to domain asset details
func (r *AssetDetailsRow) ToDomain() inventory.AssetDetails {
	return inventory.AssetDetails{
		Asset:              *r.AssetModel.ToDomain(),
		CategoryName:       r.CategoryName,
		ManufacturerName:   r.ManufacturerName,
		LocationName:       r.LocationName,
		AssignedToUserName: r.AssignedToUserName,
	}
}
