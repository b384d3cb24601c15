package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aims/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateReadError maps a missing row to shared.ErrNotFound.
func translateReadError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound.WithMessage(entity + " not found")
	}
	return fmt.Errorf("failed to load %s: %w", entity, err)
}

// translateWriteError maps constraint violations to domain errors.
func translateWriteError(err error, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists.WithMessage(entity + " already exists")
	case isForeignKeyViolation(err):
		return shared.NewDomainError("INVALID_INPUT", entity+" references a record that does not exist")
	}
	return fmt.Errorf("failed to write %s: %w", entity, err)
}

// translateDeleteError maps a restrict violation to shared.ErrEntityInUse.
func translateDeleteError(err error, entity string) error {
	if isForeignKeyViolation(err) {
		return shared.ErrEntityInUse.WithMessage(entity + " is still assigned to assets")
	}
	return fmt.Errorf("failed to delete %s: %w", entity, err)
}

// sqliteForeignKeyFailed is the message of SQLITE_CONSTRAINT_FOREIGNKEY. The
// sqlite dialector does not translate it for every driver error shape.
const sqliteForeignKeyFailed = "FOREIGN KEY constraint failed"

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || strings.Contains(err.Error(), sqliteForeignKeyFailed)
}
