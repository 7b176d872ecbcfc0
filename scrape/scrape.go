// Package scrape orchestrates scraping course plans for many programs.
// It coordinates catalog fetching, plan assembly, and storage.
package scrape

import (
	"context"
	"strings"

	"github.com/fwojciec/planscrape"
	"golang.org/x/sync/errgroup"
)

// Scraper scrapes the plans of one or more programs into a PlanStore.
type Scraper struct {
	Catalog     planscrape.CatalogService
	Store       planscrape.PlanStore
	Concurrency int
}

// Request describes what to scrape.
type Request struct {
	// Level is the program level used to fetch metadata (2 = undergraduate).
	Level int

	// PlanType is the catalog plan type code (e.g. "lisans").
	PlanType string

	// Codes are the program codes to scrape. Empty means every program
	// at Level.
	Codes []string
}

// Result holds the outcome of a scrape operation.
type Result struct {
	Saved  int
	Failed int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Program   string
	Error     error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of processing a single program.
type scrapeResult struct {
	code  string
	plans *planscrape.ProgramPlans
	err   error
}

// ScrapePrograms scrapes plan files for the requested programs and saves
// them to the store. Programs are processed concurrently; failures are
// counted per program and do not stop the rest of the run. Committing or
// aborting the store is the caller's responsibility.
func (s *Scraper) ScrapePrograms(ctx context.Context, req Request, progress ProgressFunc) (*Result, error) {
	programs, err := s.Catalog.FetchPrograms(ctx, req.Level)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]*planscrape.Program, len(programs))
	for _, p := range programs {
		byCode[p.Code] = p
	}

	targets := req.Codes
	if len(targets) == 0 {
		targets = make([]string, 0, len(programs))
		for _, p := range programs {
			targets = append(targets, p.Code)
		}
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}

	total := len(targets)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan scrapeResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, code := range targets {
			program, known := byCode[code]
			if !known {
				// The code may belong to another level or plan type.
				resultCh <- scrapeResult{
					code: code,
					err:  planscrape.Errorf(planscrape.ENOTFOUND, "program %q not found at level %d", code, req.Level),
				}
				continue
			}
			g.Go(func() error {
				pp, err := s.scrapeProgram(gctx, program, req.PlanType)
				resultCh <- scrapeResult{code: code, plans: pp, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{}
	completed := 0
	for res := range resultCh {
		completed++

		if res.err == nil {
			res.err = s.Store.Save(ctx, res.plans)
		}

		if res.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					Program:   res.code,
					Error:     res.err,
				})
			}
			continue
		}

		result.Saved++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				Program:   res.code,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return result, nil
}

// scrapeProgram fetches every plan version for one program.
func (s *Scraper) scrapeProgram(ctx context.Context, program *planscrape.Program, planType string) (*planscrape.ProgramPlans, error) {
	refs, err := s.Catalog.FetchPlans(ctx, planType, program.Code)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, planscrape.Errorf(planscrape.ENOTFOUND, "no plans found for program %q, plan type %q", program.Code, planType)
	}

	pp := &planscrape.ProgramPlans{
		Program:       *program,
		PlanType:      planType,
		PlanTypeLabel: PlanTypeLabel(planType),
	}

	for _, ref := range refs {
		plan, err := s.Catalog.FetchPlanDetail(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		plan.Header = planHeader(program.Name, ref.Label)
		pp.Plans = append(pp.Plans, plan)
	}

	return pp, nil
}

// planHeader composes the PLAN header line. When the catalog row text
// already mentions the program it is used as-is; otherwise the program
// name is prepended.
func planHeader(programName, refLabel string) string {
	if strings.Contains(refLabel, programName) {
		return refLabel
	}
	return programName + " " + refLabel
}

// PlanTypeLabel maps a plan type code to its display label.
func PlanTypeLabel(planType string) string {
	if planType == "lisans" {
		return "Lisans"
	}
	return planType
}
