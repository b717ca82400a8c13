package dom

import (
	"strings"

	"github.com/seliq/seliq/selector"
)

var matcher selector.Matcher

// Matches reports whether the element satisfies the selector string.
func (e *Element) Matches(sel string) (bool, error) {
	list, err := selector.Parse(sel)
	if err != nil {
		return false, err
	}
	return matcher.Matches(e, list), nil
}

// Closest walks the element and its ancestors, nearest first, and returns
// the first that matches, or nil.
func (e *Element) Closest(sel string) (*Element, error) {
	list, err := selector.Parse(sel)
	if err != nil {
		return nil, err
	}
	n := matcher.Closest(e, list)
	if n == nil {
		return nil, nil
	}
	return n.(*Element), nil
}

// QuerySelector returns the first descendant matching the selector in
// document order, or nil. The element itself is never returned.
func (e *Element) QuerySelector(sel string) (*Element, error) {
	list, err := selector.Parse(sel)
	if err != nil {
		return nil, err
	}
	n := matcher.QuerySelector(e, list)
	if n == nil {
		return nil, nil
	}
	return n.(*Element), nil
}

// QuerySelectorAll returns all descendants matching the selector in
// document order.
func (e *Element) QuerySelectorAll(sel string) ([]*Element, error) {
	list, err := selector.Parse(sel)
	if err != nil {
		return nil, err
	}
	nodes := matcher.QuerySelectorAll(e, list)
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*Element)
	}
	return out, nil
}

// GetElementByID returns the first element in the subtree, including e
// itself, with the given id.
func (e *Element) GetElementByID(id string) *Element {
	var found *Element
	e.walk(func(el *Element) bool {
		if el.ID() == id {
			found = el
			return true
		}
		return false
	})
	return found
}

// GetElementsByTagName returns each element in the subtree, including e
// itself, with the given tag name; "*" collects every element.
func (e *Element) GetElementsByTagName(tag string) []*Element {
	tag = strings.ToLower(tag)
	var out []*Element
	e.walk(func(el *Element) bool {
		if tag == "*" || el.tag == tag {
			out = append(out, el)
		}
		return false
	})
	return out
}

// GetElementsByClassName returns each element in the subtree, including e
// itself, carrying every class in the space-separated list.
func (e *Element) GetElementsByClassName(classes string) []*Element {
	names := strings.Fields(classes)
	if len(names) == 0 {
		return nil
	}
	var out []*Element
	e.walk(func(el *Element) bool {
		for _, name := range names {
			if !el.HasClass(name) {
				return false
			}
		}
		out = append(out, el)
		return false
	})
	return out
}

// walk visits the element and its subtree in document order, stopping
// early when visit reports true.
func (e *Element) walk(visit func(*Element) bool) bool {
	if visit(e) {
		return true
	}
	for c := e.firstChild; c != nil; c = c.nextSibling {
		if c.walk(visit) {
			return true
		}
	}
	return false
}
