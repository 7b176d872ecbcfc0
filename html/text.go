package html

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultExcluded returns the tags whose subtrees never contribute text:
// script and style. Their bodies are code, not content.
func DefaultExcluded() map[atom.Atom]bool {
	return map[atom.Atom]bool{
		atom.Script: true,
		atom.Style:  true,
	}
}

// ExtractText flattens the text content under root in document order.
//
// Text nodes contribute their data verbatim; no trimming or whitespace
// normalization is applied, and no separators are inserted between
// siblings. Elements whose tag is in excluded contribute nothing and are
// not descended into. Comments and doctypes contribute nothing. The tree
// is not modified.
func ExtractText(root *html.Node, excluded map[atom.Atom]bool) string {
	var b strings.Builder
	writeText(root, excluded, &b)
	return b.String()
}

func writeText(n *html.Node, excluded map[atom.Atom]bool, b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if excluded[n.DataAtom] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(c, excluded, b)
		}
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(c, excluded, b)
		}
	case html.CommentNode, html.DoctypeNode, html.RawNode, html.ErrorNode:
		// No text content.
	default:
		// The node kinds above are the complete set the parser produces.
		// Anything else means the tree is corrupt; fail loudly rather
		// than emit partial text.
		panic("planscrape/html: unknown node type")
	}
}
