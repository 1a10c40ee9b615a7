// Package pagedepth measures how deeply <ul> and <ol> lists nest in an HTML
// document.
package pagedepth

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Depth returns 0 for nil, otherwise one more than the larger depth of the
// first <ul> and the first <ol> found below n in document order.
func Depth(n *html.Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(Depth(first(n, atom.Ul)), Depth(first(n, atom.Ol)))
}

// MaxDepth returns the largest Depth over every <ul> and <ol> inside the
// document body, or 0 when there are none.
func MaxDepth(doc *html.Node) int {
	root := body(doc)
	if root == nil {
		return 0
	}
	best := 0
	for _, list := range all(root) {
		if d := Depth(list); d > best {
			best = d
		}
	}
	return best
}

// MaxDepthReader parses r as HTML and returns MaxDepth of the result.
func MaxDepthReader(r io.Reader) (int, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("parse html: %w", err)
	}
	return MaxDepth(doc), nil
}

// first is querySelector: the first descendant of n, excluding n itself,
// with the given tag.
func first(n *html.Node, tag atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == tag {
			return c
		}
		if found := first(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func all(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
			out = append(out, c)
		}
		out = append(out, all(c)...)
	}
	return out
}

func body(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if b := first(doc, atom.Body); b != nil {
		return b
	}
	return doc
}
