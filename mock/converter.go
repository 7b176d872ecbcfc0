package mock

import "github.com/fwojciec/planscrape"

var _ planscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of planscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
