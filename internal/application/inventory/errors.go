package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// referenceCounter is the part of AssetRepository the delete policy needs
type referenceCounter interface {
	CountByReference(ctx context.Context, ref inventory.AssetReference, id uuid.UUID) (int64, error)
}

// ensureUnreferenced rejects the delete when any asset still points at id
func ensureUnreferenced(ctx context.Context, assets referenceCounter, ref inventory.AssetReference, entity string, id uuid.UUID) error {
	n, err := assets.CountByReference(ctx, ref, id)
	if err != nil {
		return deleteFailed(entity, err)
	}
	if n > 0 {
		return shared.ErrEntityInUse.WithMessage(
			fmt.Sprintf("%s cannot be deleted because it is assigned to %d asset(s).", entity, n))
	}
	return nil
}

// deleteFailed keeps domain errors and wraps anything else as ERR_DELETE_FAILED
func deleteFailed(entity string, err error) error {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return err
	}
	return shared.ErrDeleteFailed.Wrap(fmt.Sprintf("Failed to delete %s.", strings.ToLower(entity)), err)
}

// updateFailed wraps any failure raised inside an update transaction
func updateFailed(err error) error {
	return shared.ErrUpdateFailed.Wrap(err.Error(), err)
}
