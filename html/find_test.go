package html_test

import (
	"testing"

	planhtml "github.com/fwojciec/planscrape/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// elem builds an element node with the given children attached in order.
func elem(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// text builds a text leaf.
func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// comment builds a comment node.
func comment(s string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: s}
}

func isTbody(n *html.Node) bool {
	return n.DataAtom == atom.Tbody
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	t.Run("finds the only matching node", func(t *testing.T) {
		t.Parallel()

		tbody := elem(atom.Tbody, text("row"))
		root := elem(atom.Html, elem(atom.Body, elem(atom.Table, tbody)))

		got := planhtml.FindFirst(root, isTbody)

		assert.Same(t, tbody, got)
	})

	t.Run("returns nil when no node matches", func(t *testing.T) {
		t.Parallel()

		root := elem(atom.Html, elem(atom.Body, elem(atom.Div, text("no tables"))))

		assert.Nil(t, planhtml.FindFirst(root, isTbody))
	})

	t.Run("returns nil for nil root", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, planhtml.FindFirst(nil, isTbody))
	})

	t.Run("tests a node before its children", func(t *testing.T) {
		t.Parallel()

		inner := elem(atom.Div)
		outer := elem(atom.Div, inner)

		got := planhtml.FindFirst(outer, func(n *html.Node) bool {
			return n.DataAtom == atom.Div
		})

		assert.Same(t, outer, got)
	})

	t.Run("returns the first match in pre-order with matches at different depths", func(t *testing.T) {
		t.Parallel()

		// First tbody is nested deeper but occurs earlier in document order.
		first := elem(atom.Tbody, text("first"))
		second := elem(atom.Tbody, text("second"))
		root := elem(atom.Body,
			elem(atom.Div, elem(atom.Table, first)),
			elem(atom.Table, second),
		)

		got := planhtml.FindFirst(root, isTbody)

		require.NotNil(t, got)
		assert.Same(t, first, got)
		assert.Equal(t, "first", got.FirstChild.Data)

		// Deterministic on re-run.
		assert.Same(t, first, planhtml.FindFirst(root, isTbody))
	})

	t.Run("stops visiting after the first match", func(t *testing.T) {
		t.Parallel()

		match := elem(atom.Tbody)
		root := elem(atom.Body,
			elem(atom.Table, match),
			elem(atom.Table, elem(atom.Tbody)),
		)

		var visited []*html.Node
		got := planhtml.FindFirst(root, func(n *html.Node) bool {
			visited = append(visited, n)
			return isTbody(n)
		})

		require.Same(t, match, got)
		// body, table, tbody; the second table's subtree is never tested.
		assert.Len(t, visited, 3)
	})

	t.Run("never tests text or comment nodes", func(t *testing.T) {
		t.Parallel()

		root := elem(atom.Body, text("leaf"), comment("note"), elem(atom.Div))

		var tested []html.NodeType
		planhtml.FindFirst(root, func(n *html.Node) bool {
			tested = append(tested, n.Type)
			return false
		})

		for _, typ := range tested {
			assert.Equal(t, html.ElementNode, typ)
		}
	})
}
