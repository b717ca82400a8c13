// Package htmlnode adapts the node trees produced by golang.org/x/net/html
// to the selector engine's navigation interface, so parsed HTML documents
// can be queried directly.
package htmlnode

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/seliq/seliq/selector"
)

// Node wraps an *html.Node as a selector.Node. Navigation presents the
// element-only view the matcher expects: text, comment and doctype nodes
// are skipped.
type Node struct {
	n *html.Node
}

var _ selector.Node = (*Node)(nil)

// Wrap adapts an *html.Node. The node is usually an element, but wrapping
// the document node works too: it has no tag and simply roots a query.
func Wrap(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

// Unwrap returns the underlying *html.Node.
func (w *Node) Unwrap() *html.Node {
	return w.n
}

// Parse reads an HTML document and returns its document node wrapped for
// querying.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return Wrap(doc), nil
}

// Root returns the document's root element (the <html> element for a full
// document), or nil.
func (w *Node) Root() *Node {
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return Wrap(c)
		}
	}
	return nil
}

func (w *Node) Parent() selector.Node {
	p := w.n.Parent
	for p != nil && p.Type != html.ElementNode {
		p = p.Parent
	}
	if p == nil {
		return nil
	}
	return Wrap(p)
}

func (w *Node) FirstChild() selector.Node {
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return Wrap(c)
		}
	}
	return nil
}

func (w *Node) NextSibling() selector.Node {
	for s := w.n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return Wrap(s)
		}
	}
	return nil
}

func (w *Node) PrevSibling() selector.Node {
	for s := w.n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return Wrap(s)
		}
	}
	return nil
}

func (w *Node) TagName() string {
	if w.n.Type != html.ElementNode {
		return ""
	}
	return w.n.Data
}

func (w *Node) ID() string {
	v, _ := w.Attribute("id")
	return v
}

func (w *Node) HasClass(name string) bool {
	v, ok := w.Attribute("class")
	if !ok {
		return false
	}
	for _, f := range strings.Fields(v) {
		if f == name {
			return true
		}
	}
	return false
}

func (w *Node) HasAttribute(name string) bool {
	_, ok := w.Attribute(name)
	return ok
}

func (w *Node) Attribute(name string) (string, bool) {
	for _, a := range w.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (w *Node) AttributeNS(ns, name string) (string, bool) {
	for _, a := range w.n.Attr {
		if a.Key != name {
			continue
		}
		if ns == "*" || a.Namespace == ns {
			return a.Val, true
		}
	}
	return "", false
}

func (w *Node) State(kind selector.PseudoKind) bool {
	return selector.DefaultElementState(w, kind)
}
