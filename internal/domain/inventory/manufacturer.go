package inventory

import (
	"strings"

	"github.com/aims/backend/internal/domain/shared"
)

// ManufacturerContact holds the optional vendor contact details
type ManufacturerContact struct {
	URL          *string
	SupportURL   *string
	SupportPhone *string
	SupportEmail *string
}

// Manufacturer is the vendor or maker of assets
type Manufacturer struct {
	shared.BaseEntity
	Name string
	ManufacturerContact
}

// NewManufacturer creates a new manufacturer
func NewManufacturer(name string, contact ManufacturerContact) (*Manufacturer, error) {
	m := &Manufacturer{BaseEntity: shared.NewBaseEntity()}
	if err := m.apply(name, contact); err != nil {
		return nil, err
	}
	return m, nil
}

// Update replaces the manufacturer's name and contact details
func (m *Manufacturer) Update(name string, contact ManufacturerContact) error {
	if err := m.apply(name, contact); err != nil {
		return err
	}
	m.Touch()
	return nil
}

func (m *Manufacturer) apply(name string, contact ManufacturerContact) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Manufacturer name cannot be empty")
	}
	m.Name = name
	m.ManufacturerContact = ManufacturerContact{
		URL:          shared.NilIfBlank(contact.URL),
		SupportURL:   shared.NilIfBlank(contact.SupportURL),
		SupportPhone: shared.NilIfBlank(contact.SupportPhone),
		SupportEmail: shared.NilIfBlank(contact.SupportEmail),
	}
	return nil
}
