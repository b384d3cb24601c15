package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"add notes index":     "add_notes_index",
		"Add-Serial--Index":   "add_serial_index",
		"  widen asset tag  ": "widen_asset_tag",
		"drop $tmp!":          "drop_tmp",
		"___":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeName(in), in)
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	first, err := CreateMigration(dir, "add notes index")
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.Version)
	assert.Equal(t, filepath.Join(dir, "000001_add_notes_index.up.sql"), first.UpPath)
	assert.FileExists(t, first.DownPath)

	second, err := CreateMigration(dir, "Widen Tag")
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.Version)

	content, err := os.ReadFile(second.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- Migration: widen_tag")

	listed, err := ListMigrations(os.DirFS(dir), ".")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "add_notes_index", listed[0].Name)
	assert.Equal(t, "widen_tag", listed[1].Name)

	_, err = CreateMigration(dir, "!!!")
	assert.Error(t, err)
}

func TestListMigrations_MissingDir(t *testing.T) {
	listed, err := ListMigrations(os.DirFS(t.TempDir()), "nope")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestEmbedded(t *testing.T) {
	listed, err := Embedded()
	require.NoError(t, err)
	require.NotEmpty(t, listed)
	assert.Equal(t, uint(1), listed[0].Version)
	assert.Equal(t, "init_schema", listed[0].Name)

	up, err := migrations.ReadFile("sql/000001_init_schema.up.sql")
	require.NoError(t, err)
	for _, table := range []string{"users", "categories", "manufacturers", "locations", "assets"} {
		assert.Contains(t, string(up), "CREATE TABLE "+table+" (")
	}
	assert.Contains(t, string(up), "ON DELETE RESTRICT")
}
