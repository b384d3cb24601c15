package inventory

import (
	"context"

	"github.com/aims/backend/internal/domain/shared/validation"
	"github.com/google/uuid"
)

// Column limits shared by the reference entities
const (
	maxName     = 255
	maxLongText = 500
	maxPhone    = 50
)

// idLookup reports whether a record with the given id exists
type idLookup func(ctx context.Context, id uuid.UUID) (bool, error)

// exists adapts an id lookup to a validation rule. A malformed id never exists.
func exists(raw string, lookup idLookup) validation.Rule {
	return validation.Exists(func(ctx context.Context) (bool, error) {
		id, err := uuid.Parse(raw)
		if err != nil {
			return false, nil
		}
		return lookup(ctx, id)
	})
}

// nameLookup reports whether another record already uses the name
type nameLookup func(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

func unique(value string, excludeID *uuid.UUID, lookup nameLookup) validation.Rule {
	return validation.Unique(func(ctx context.Context) (bool, error) {
		return lookup(ctx, value, excludeID)
	})
}
