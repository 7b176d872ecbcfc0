package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/planscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher     planscrape.Fetcher
	Extractor   planscrape.Extractor
	Converter   planscrape.Converter
	Catalog     planscrape.CatalogService
	Store       planscrape.PlanStore
	Writer      planscrape.ExtractionWriter
	Extractions planscrape.ExtractionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Grab     GrabCmd     `cmd:"" help:"Fetch a page and extract its first table body"`
	Programs ProgramsCmd `cmd:"" help:"List programs in the catalog"`
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape course plan files for programs"`
}

// GrabCmd is the "grab" subcommand.
type GrabCmd struct {
	URL     string        `arg:"" help:"Page URL to fetch"`
	Out     string        `arg:"" optional:"" help:"Output file path (default: stdout)"`
	Format  string        `enum:"text,markdown" default:"text" help:"Output format"`
	DB      string        `help:"Archive the extraction to this SQLite database"`
	Timeout time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
}

// ProgramsCmd is the "programs" subcommand.
type ProgramsCmd struct {
	Level int `short:"l" default:"2" help:"Program level (2 = undergraduate)"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Codes       []string      `arg:"" optional:"" help:"Program codes to scrape (default: all at level)"`
	Plan        string        `short:"p" default:"lisans" help:"Plan type code (e.g. lisans, cap, yandal)"`
	Level       int           `short:"l" default:"2" help:"Program level used to fetch metadata"`
	Outdir      string        `short:"o" default:"itu_txt" help:"Output directory for TXT files"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent program limit"`
	Rate        float64       `default:"1.5" help:"Catalog requests per second"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Request timeout"`
	Verbose     bool          `short:"v" help:"Log catalog requests"`
}
