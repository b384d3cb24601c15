package persistence

import (
	"github.com/aims/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// AllModels lists every persistence model in dependency order
func AllModels() []any {
	return []any{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.ManufacturerModel{},
		&models.LocationModel{},
		&models.AssetModel{},
	}
}

// AutoMigrate creates the tables from the persistence models. It is meant for
// sqlite test databases and local development; postgres deployments apply the
// versioned schema through the migration package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
