package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/planscrape"
	"github.com/fwojciec/planscrape/fs"
	planhtml "github.com/fwojciec/planscrape/html"
	"github.com/fwojciec/planscrape/htmltomarkdown"
	planhttp "github.com/fwojciec/planscrape/http"
	planslog "github.com/fwojciec/planscrape/slog"
	"github.com/fwojciec/planscrape/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used for the extraction archive, opened only
	// when the grab command asks for one.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("planscrape"),
		kong.Description("Scrape course plan tables from the catalog"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'planscrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire command-specific dependencies based on command.
	switch cmd {
	case "grab":
		fetcher := planhttp.NewFetcher(planhttp.WithTimeout(cli.Grab.Timeout))
		defer fetcher.Close()
		deps.Fetcher = fetcher
		deps.Extractor = planhtml.NewTableExtractor()
		deps.Converter = htmltomarkdown.NewConverter()

		if cli.Grab.Out != "" {
			deps.Writer = fs.NewWriter(cli.Grab.Out)
		}

		if cli.Grab.DB != "" {
			m.DB = sqlite.NewDB(cli.Grab.DB)
			if err := m.DB.Open(); err != nil {
				return fmt.Errorf("failed to open database at %q: %w", cli.Grab.DB, err)
			}
			deps.Extractions = sqlite.NewExtractionService(m.DB)
		}

	case "programs":
		fetcher := planhttp.NewFetcher()
		defer fetcher.Close()
		deps.Catalog = planhttp.NewCatalog(fetcher)

	case "scrape":
		fetcher := planhttp.NewFetcher(planhttp.WithTimeout(cli.Scrape.Timeout))
		defer fetcher.Close()

		var f planscrape.Fetcher = fetcher
		if cli.Scrape.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			f = planslog.NewLoggingFetcher(f, logger)
			deps.Catalog = planslog.NewLoggingCatalogService(planhttp.NewCatalog(f, planhttp.WithRequestsPerSecond(cli.Scrape.Rate)), logger)
		} else {
			deps.Catalog = planhttp.NewCatalog(f, planhttp.WithRequestsPerSecond(cli.Scrape.Rate))
		}

		outdir := cli.Scrape.Outdir
		deps.Store = fs.NewPlanStore(filepath.Dir(outdir), filepath.Base(outdir))
	}

	return kongCtx.Run(deps)
}
