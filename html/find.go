// Package html implements the tree-traversal core of planscrape on top of
// the golang.org/x/net/html parse tree: a first-match structural locator
// and a content-filtering text flattener.
package html

import "golang.org/x/net/html"

// FindFirst returns the first element node in pre-order depth-first order
// for which pred returns true, or nil if no node matches.
//
// Only element nodes are tested; text, comment and doctype nodes are
// passed over. Children are visited in document order and the search
// stops at the first match, so later matches are never visited.
func FindFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && pred(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := FindFirst(c, pred); n != nil {
			return n
		}
	}
	return nil
}
