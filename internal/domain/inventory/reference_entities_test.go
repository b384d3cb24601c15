package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		c, err := NewCategory(" Laptop ", strPtr("Portable computers"))
		require.NoError(t, err)
		assert.Equal(t, "Laptop", c.Name)
		assert.Equal(t, "Portable computers", *c.Description)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategory("  ", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("update clears blank description", func(t *testing.T) {
		c, err := NewCategory("Printer", strPtr("Office printers"))
		require.NoError(t, err)
		require.NoError(t, c.Update("Printer", strPtr("")))
		assert.Nil(t, c.Description)
	})
}

func TestNewManufacturer(t *testing.T) {
	m, err := NewManufacturer("Dell", ManufacturerContact{
		URL:          strPtr("https://dell.com"),
		SupportEmail: strPtr(" support@dell.com "),
		SupportPhone: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dell", m.Name)
	assert.Equal(t, "https://dell.com", *m.URL)
	assert.Equal(t, "support@dell.com", *m.SupportEmail)
	assert.Nil(t, m.SupportPhone)
	assert.Nil(t, m.SupportURL)

	_, err = NewManufacturer("", ManufacturerContact{})
	assert.Error(t, err)
}

func TestNewLocation(t *testing.T) {
	l, err := NewLocation("Data Center - Rack 5", strPtr("1 Server Way"))
	require.NoError(t, err)
	assert.Equal(t, "Data Center - Rack 5", l.Name)

	require.NoError(t, l.Update("Data Center - Rack 6", nil))
	assert.Equal(t, "Data Center - Rack 6", l.Name)
	assert.Nil(t, l.Address)

	assert.Error(t, l.Update("", nil))
}
