package mock

import (
	"context"

	"github.com/fwojciec/planscrape"
)

var _ planscrape.PlanStore = (*PlanStore)(nil)

// PlanStore is a mock implementation of planscrape.PlanStore.
type PlanStore struct {
	SaveFn   func(ctx context.Context, pp *planscrape.ProgramPlans) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PlanStore) Save(ctx context.Context, pp *planscrape.ProgramPlans) error {
	return s.SaveFn(ctx, pp)
}

func (s *PlanStore) Commit() error {
	if s.CommitFn == nil {
		return nil
	}
	return s.CommitFn()
}

func (s *PlanStore) Abort() error {
	if s.AbortFn == nil {
		return nil
	}
	return s.AbortFn()
}
