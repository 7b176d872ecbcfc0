package html

import (
	"strings"

	"github.com/fwojciec/planscrape"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure TableExtractor implements planscrape.Extractor at compile time.
var _ planscrape.Extractor = (*TableExtractor)(nil)

// TableExtractor locates the first table body in an HTML document and
// flattens its text content.
type TableExtractor struct {
	target   atom.Atom
	excluded map[atom.Atom]bool
}

// Option configures a TableExtractor.
type Option func(*TableExtractor)

// WithTarget sets the tag the extractor locates. Defaults to tbody.
func WithTarget(target atom.Atom) Option {
	return func(e *TableExtractor) {
		e.target = target
	}
}

// WithExcluded sets the tags skipped during text flattening.
// Defaults to DefaultExcluded (script and style).
func WithExcluded(excluded map[atom.Atom]bool) Option {
	return func(e *TableExtractor) {
		e.excluded = excluded
	}
}

// NewTableExtractor creates a new TableExtractor.
func NewTableExtractor(opts ...Option) *TableExtractor {
	e := &TableExtractor{
		target:   atom.Tbody,
		excluded: DefaultExcluded(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses raw HTML, locates the first target element in pre-order
// document order, and returns its flattened text along with the subtree
// rendered back to HTML. Returns ENOTFOUND if no target element exists.
func (e *TableExtractor) Extract(rawHTML string) (*planscrape.ExtractResult, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, planscrape.Errorf(planscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	target := e.target
	node := FindFirst(doc, func(n *html.Node) bool {
		return n.DataAtom == target
	})
	if node == nil {
		return nil, planscrape.Errorf(planscrape.ENOTFOUND, "no <%s> element found", target)
	}

	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return nil, err
	}

	return &planscrape.ExtractResult{
		Text:      ExtractText(node, e.excluded),
		TableHTML: b.String(),
	}, nil
}
