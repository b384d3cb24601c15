package inventory

import (
	"strings"

	"github.com/aims/backend/internal/domain/shared"
)

// Category is a classification bucket for assets
type Category struct {
	shared.BaseEntity
	Name        string
	Description *string
}

// NewCategory creates a new category
func NewCategory(name string, description *string) (*Category, error) {
	c := &Category{BaseEntity: shared.NewBaseEntity()}
	if err := c.apply(name, description); err != nil {
		return nil, err
	}
	return c, nil
}

// Update updates the category's basic information
func (c *Category) Update(name string, description *string) error {
	if err := c.apply(name, description); err != nil {
		return err
	}
	c.Touch()
	return nil
}

func (c *Category) apply(name string, description *string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	c.Name = name
	c.Description = shared.NilIfBlank(description)
	return nil
}
