package mock

import "github.com/fwojciec/planscrape"

var _ planscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of planscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*planscrape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*planscrape.ExtractResult, error) {
	return e.ExtractFn(html)
}
