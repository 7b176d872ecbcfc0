package main

import (
	"fmt"

	"github.com/fwojciec/planscrape"
	"github.com/fwojciec/planscrape/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	scraper := &scrape.Scraper{
		Catalog:     deps.Catalog,
		Store:       deps.Store,
		Concurrency: c.Concurrency,
	}

	progress := func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d programs to scrape\n", e.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] ok %s\n", e.Completed, e.Total, e.Program)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] fail %s: %s\n", e.Completed, e.Total, e.Program, planscrape.ErrorMessage(e.Error))
		}
	}

	result, err := scraper.ScrapePrograms(deps.Ctx, scrape.Request{
		Level:    c.Level,
		PlanType: c.Plan,
		Codes:    c.Codes,
	}, progress)
	if err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", planscrape.ErrorMessage(err))
		return err
	}

	if result.Saved == 0 {
		_ = deps.Store.Abort()
		fmt.Fprintln(deps.Stdout, "No programs saved")
		return nil
	}

	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %s\n", planscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done. Success: %d, Failures: %d, Output dir: %s\n", result.Saved, result.Failed, c.Outdir)
	return nil
}
