package mock

import (
	"context"

	"github.com/fwojciec/planscrape"
)

var _ planscrape.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of planscrape.CatalogService.
type CatalogService struct {
	FetchProgramsFn   func(ctx context.Context, level int) ([]*planscrape.Program, error)
	FetchPlansFn      func(ctx context.Context, planType, programCode string) ([]*planscrape.PlanRef, error)
	FetchPlanDetailFn func(ctx context.Context, planID string) (*planscrape.Plan, error)
}

func (s *CatalogService) FetchPrograms(ctx context.Context, level int) ([]*planscrape.Program, error) {
	return s.FetchProgramsFn(ctx, level)
}

func (s *CatalogService) FetchPlans(ctx context.Context, planType, programCode string) ([]*planscrape.PlanRef, error) {
	return s.FetchPlansFn(ctx, planType, programCode)
}

func (s *CatalogService) FetchPlanDetail(ctx context.Context, planID string) (*planscrape.Plan, error) {
	return s.FetchPlanDetailFn(ctx, planID)
}
