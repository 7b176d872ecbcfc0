package planscrape

import (
	"context"
	"time"
)

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the response body.
	// Non-200 responses are errors. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Text is the flattened text of the located table body, with
	// script and style content removed. Whitespace is preserved
	// exactly as the parser produced it.
	Text string

	// TableHTML is the located subtree rendered back to HTML,
	// suitable for further conversion (e.g. to Markdown).
	TableHTML string
}

// Extractor locates the target table in an HTML page and extracts its text.
type Extractor interface {
	// Extract parses raw HTML, locates the first table body in document
	// order, and returns its flattened text content.
	// Returns ENOTFOUND if the page contains no table body; an empty
	// Text with a nil error always means the table existed but was empty.
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a well-formed fragment (e.g. a table rendered
	// by an Extractor).
	Convert(html string) (string, error)
}

// Extraction represents one archived grab of a page's table content.
type Extraction struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Format      string    `json:"format"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Extraction formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "extraction source URL required")
	}
	if e.Format != FormatText && e.Format != FormatMarkdown {
		return Errorf(EINVALID, "extraction format must be %q or %q", FormatText, FormatMarkdown)
	}
	return nil
}

// ExtractionWriter writes a single extraction to storage.
type ExtractionWriter interface {
	WriteExtraction(ctx context.Context, extraction *Extraction) error
}

// ExtractionService represents a service for managing archived extractions.
type ExtractionService interface {
	// CreateExtraction archives a new extraction, assigning its ID,
	// content hash and fetch timestamp.
	CreateExtraction(ctx context.Context, extraction *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter,
	// most recent first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
