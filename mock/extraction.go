package mock

import (
	"context"

	"github.com/fwojciec/planscrape"
)

var _ planscrape.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of planscrape.ExtractionWriter.
type ExtractionWriter struct {
	WriteExtractionFn func(ctx context.Context, extraction *planscrape.Extraction) error
}

func (w *ExtractionWriter) WriteExtraction(ctx context.Context, extraction *planscrape.Extraction) error {
	return w.WriteExtractionFn(ctx, extraction)
}

var _ planscrape.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of planscrape.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, extraction *planscrape.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*planscrape.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter planscrape.ExtractionFilter) ([]*planscrape.Extraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *planscrape.Extraction) error {
	return s.CreateExtractionFn(ctx, extraction)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*planscrape.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter planscrape.ExtractionFilter) ([]*planscrape.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
