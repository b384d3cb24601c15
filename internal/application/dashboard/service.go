// Package dashboard computes the read-only inventory statistics.
package dashboard

import (
	"context"
	"time"

	"github.com/aims/backend/internal/domain/inventory"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// StatsCacheKey is the cache key of the computed statistics
const StatsCacheKey = "aims:dashboard:stats"

// Service aggregates counts for the dashboard and caches the result for a short TTL.
// It subscribes to record change events and drops the cached copy on every write.
type Service struct {
	stats  inventory.StatsRepository
	cache  cache.Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates a dashboard service. A nil store or a zero ttl disables caching.
func NewService(stats inventory.StatsRepository, store cache.Store, ttl time.Duration, logger *zap.Logger) *Service {
	if store == nil || ttl <= 0 {
		store = cache.NoopStore{}
	}
	return &Service{stats: stats, cache: store, ttl: ttl, logger: logger}
}

// Stats returns the cached statistics or computes them
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	var cached StatsResponse
	hit, err := cache.GetJSON(ctx, s.cache, StatsCacheKey, &cached)
	if err != nil {
		s.logger.Warn("Dashboard cache read failed", zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	resp, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, s.cache, StatsCacheKey, resp, s.ttl); err != nil {
		s.logger.Warn("Dashboard cache write failed", zap.Error(err))
	}
	return resp, nil
}

func (s *Service) compute(ctx context.Context) (*StatsResponse, error) {
	totals, err := s.stats.Totals(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.stats.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.stats.CountByReference(ctx, inventory.RefCategory)
	if err != nil {
		return nil, err
	}
	byLocation, err := s.stats.CountByReference(ctx, inventory.RefLocation)
	if err != nil {
		return nil, err
	}
	byUser, err := s.stats.CountByReference(ctx, inventory.RefAssignedUser)
	if err != nil {
		return nil, err
	}

	statuses := make([]StatusTotal, len(byStatus))
	for i, c := range byStatus {
		statuses[i] = StatusTotal{Status: string(c.Status), Total: c.Total}
	}

	return &StatsResponse{
		Totals: toTotals(totals),
		Charts: ChartsResponse{
			AssetsByStatus: statuses,
			AssetsByCategory: mapCounts(byCategory, func(c inventory.ReferenceCount) CategoryTotal {
				return CategoryTotal{CategoryID: c.ID, Name: c.Name, Total: c.Total}
			}),
			AssetsByLocation: mapCounts(byLocation, func(c inventory.ReferenceCount) LocationTotal {
				return LocationTotal{LocationID: c.ID, Name: c.Name, Total: c.Total}
			}),
			AssetsByAssignedUser: mapCounts(byUser, func(c inventory.ReferenceCount) UserTotal {
				return UserTotal{AssignedToUserID: c.ID, Name: c.Name, Total: c.Total}
			}),
		},
	}, nil
}

// Invalidate drops the cached statistics
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, StatsCacheKey)
}

// Handle implements shared.EventHandler
func (s *Service) Handle(ctx context.Context, event shared.DomainEvent) error {
	return s.Invalidate(ctx)
}

// EventTypes implements shared.EventHandler
func (s *Service) EventTypes() []string {
	return shared.RecordEventTypes()
}

var _ shared.EventHandler = (*Service)(nil)
