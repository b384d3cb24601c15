package telemetry

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// InventoryMetrics counts record writes by entity, operation and outcome
type InventoryMetrics struct {
	writes metric.Int64Counter
}

// NewInventoryMetrics registers the write counter on meter
func NewInventoryMetrics(meter metric.Meter) (*InventoryMetrics, error) {
	writes, err := meter.Int64Counter("aims.inventory.writes",
		metric.WithDescription("Create, update and delete operations on inventory records"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create write counter: %w", err)
	}
	return &InventoryMetrics{writes: writes}, nil
}

// RecordWrite adds one write. Safe on a nil receiver so services can run without metrics.
func (m *InventoryMetrics) RecordWrite(ctx context.Context, entity, operation string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.writes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

// RegisterDBPoolMetrics exports connection pool gauges read from stats on every collection
func RegisterDBPoolMetrics(meter metric.Meter, stats func() sql.DBStats) error {
	open, err := meter.Int64ObservableGauge("aims.db.connections.open",
		metric.WithDescription("Open database connections"))
	if err != nil {
		return err
	}
	inUse, err := meter.Int64ObservableGauge("aims.db.connections.in_use",
		metric.WithDescription("Database connections currently in use"))
	if err != nil {
		return err
	}
	idle, err := meter.Int64ObservableGauge("aims.db.connections.idle",
		metric.WithDescription("Idle database connections"))
	if err != nil {
		return err
	}
	waits, err := meter.Int64ObservableCounter("aims.db.connections.wait_count",
		metric.WithDescription("Total waits for a database connection"))
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := stats()
		o.ObserveInt64(open, int64(s.OpenConnections))
		o.ObserveInt64(inUse, int64(s.InUse))
		o.ObserveInt64(idle, int64(s.Idle))
		o.ObserveInt64(waits, s.WaitCount)
		return nil
	}, open, inUse, idle, waits)
	return err
}
