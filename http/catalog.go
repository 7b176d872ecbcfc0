package http

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/planscrape"
	"github.com/fwojciec/planscrape/goquery"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the catalog host.
const DefaultBaseURL = "https://obs.itu.edu.tr"

// DefaultRequestsPerSecond limits how fast catalog pages are requested.
// The catalog is a shared university system; stay polite.
const DefaultRequestsPerSecond = 1.5

// Ensure Catalog implements planscrape.CatalogService at compile time.
var _ planscrape.CatalogService = (*Catalog)(nil)

// Catalog implements planscrape.CatalogService over a Fetcher.
// Requests are rate limited with a token bucket and retried with backoff.
type Catalog struct {
	fetcher planscrape.Fetcher
	baseURL string
	limiter *rate.Limiter
	delays  []time.Duration
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithBaseURL overrides the catalog host. Useful for tests.
func WithBaseURL(baseURL string) CatalogOption {
	return func(c *Catalog) {
		c.baseURL = baseURL
	}
}

// WithRequestsPerSecond sets the request rate limit.
// Defaults to DefaultRequestsPerSecond with a burst of 1.
func WithRequestsPerSecond(rps float64) CatalogOption {
	return func(c *Catalog) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays sets the backoff delays between fetch retries.
// Defaults to DefaultRetryDelays (1s, 2s, 4s).
func WithRetryDelays(delays []time.Duration) CatalogOption {
	return func(c *Catalog) {
		c.delays = delays
	}
}

// NewCatalog creates a new Catalog backed by the given fetcher.
func NewCatalog(fetcher planscrape.Fetcher, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		delays:  DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPrograms returns all programs listed at the given level.
func (c *Catalog) FetchPrograms(ctx context.Context, level int) ([]*planscrape.Program, error) {
	u := fmt.Sprintf("%s/public/GenelTanimlamalar/ProgramKodlariList?programSeviyeTipiId=%d", c.baseURL, level)

	html, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	return goquery.ParsePrograms(html)
}

// FetchPlans returns references to all plan versions for a program and
// plan type.
func (c *Catalog) FetchPlans(ctx context.Context, planType, programCode string) ([]*planscrape.PlanRef, error) {
	query := url.Values{}
	query.Set("planTipiKodu", planType)
	query.Set("programKodu", programCode)
	u := fmt.Sprintf("%s/public/DersPlan/DersPlanlariList?%s", c.baseURL, query.Encode())

	html, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	return goquery.ParsePlanRefs(html)
}

// FetchPlanDetail fetches one plan's semesters.
func (c *Catalog) FetchPlanDetail(ctx context.Context, planID string) (*planscrape.Plan, error) {
	u := fmt.Sprintf("%s/public/DersPlan/DersPlanDetay/%s", c.baseURL, url.PathEscape(planID))

	html, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	return goquery.ParsePlanDetail(html)
}

func (c *Catalog) get(ctx context.Context, u string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return fetchWithRetry(ctx, u, c.fetcher.Fetch, c.delays)
}
