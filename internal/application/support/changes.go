package support

import (
	"context"

	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/logger"
	"github.com/aims/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Write operations
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

var opEvents = map[string]string{
	OpCreate: shared.EventRecordCreated,
	OpUpdate: shared.EventRecordUpdated,
	OpDelete: shared.EventRecordDeleted,
}

// Changes counts every write and publishes a RecordChanged event for the
// successful ones. A nil *Changes records nothing.
type Changes struct {
	events  shared.EventPublisher
	metrics *telemetry.InventoryMetrics
}

// NewChanges creates a change recorder. Either argument may be nil.
func NewChanges(events shared.EventPublisher, metrics *telemetry.InventoryMetrics) *Changes {
	return &Changes{events: events, metrics: metrics}
}

// Record is called once per write, after the transaction has finished
func (c *Changes) Record(ctx context.Context, entity, op string, id uuid.UUID, err error) {
	if c == nil {
		return
	}
	c.metrics.RecordWrite(ctx, entity, op, err)
	if err != nil || c.events == nil {
		return
	}
	if err := c.events.Publish(ctx, shared.NewRecordChanged(opEvents[op], entity, id)); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish record change",
			zap.String("entity", entity),
			zap.String("op", op),
			zap.String("id", id.String()),
			zap.Error(err),
		)
	}
}
