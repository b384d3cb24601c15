package inventory

import (
	"strings"

	"github.com/aims/backend/internal/domain/shared"
)

// Location is a physical site where assets are kept
type Location struct {
	shared.BaseEntity
	Name    string
	Address *string
}

// NewLocation creates a new location
func NewLocation(name string, address *string) (*Location, error) {
	l := &Location{BaseEntity: shared.NewBaseEntity()}
	if err := l.apply(name, address); err != nil {
		return nil, err
	}
	return l, nil
}

// Update updates the location's name and address
func (l *Location) Update(name string, address *string) error {
	if err := l.apply(name, address); err != nil {
		return err
	}
	l.Touch()
	return nil
}

func (l *Location) apply(name string, address *string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Location name cannot be empty")
	}
	l.Name = name
	l.Address = shared.NilIfBlank(address)
	return nil
}
