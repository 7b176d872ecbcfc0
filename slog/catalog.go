// Package slog provides logging decorators for planscrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/planscrape"
)

// Ensure LoggingCatalogService implements planscrape.CatalogService.
var _ planscrape.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with debug logging.
type LoggingCatalogService struct {
	next   planscrape.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next planscrape.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// FetchPrograms delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FetchPrograms(ctx context.Context, level int) (programs []*planscrape.Program, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch programs",
			"level", level,
			"count", len(programs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchPrograms(ctx, level)
}

// FetchPlans delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FetchPlans(ctx context.Context, planType, programCode string) (refs []*planscrape.PlanRef, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch plans",
			"planType", planType,
			"program", programCode,
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchPlans(ctx, planType, programCode)
}

// FetchPlanDetail delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FetchPlanDetail(ctx context.Context, planID string) (plan *planscrape.Plan, err error) {
	defer func(begin time.Time) {
		semesters := 0
		if plan != nil {
			semesters = len(plan.Semesters)
		}
		s.logger.Info("fetch plan detail",
			"planID", planID,
			"semesters", semesters,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchPlanDetail(ctx, planID)
}
