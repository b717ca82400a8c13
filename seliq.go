// Package seliq exposes the selector engine through the familiar DOM
// query surface: Matches, QuerySelector, QuerySelectorAll and Closest.
package seliq

import (
	"github.com/seliq/seliq/selector"
)

var defaultMatcher selector.Matcher

// Compile parses a selector string into its reusable parsed form.
func Compile(s string) (*selector.SelectorList, error) {
	return selector.Parse(s)
}

// MustCompile is Compile for selectors known to be valid; it panics on a
// parse error.
func MustCompile(s string) *selector.SelectorList {
	list, err := selector.Parse(s)
	if err != nil {
		panic(err)
	}
	return list
}

// Matches reports whether the node satisfies the selector. A malformed
// selector fails the whole call; there is no partial-match fallback.
func Matches(n selector.Node, s string) (bool, error) {
	list, err := selector.Parse(s)
	if err != nil {
		return false, err
	}
	return defaultMatcher.Matches(n, list), nil
}

// QuerySelector returns the first descendant of root matching the
// selector in document order, or nil. Root itself is never returned.
func QuerySelector(root selector.Node, s string) (selector.Node, error) {
	list, err := selector.Parse(s)
	if err != nil {
		return nil, err
	}
	return defaultMatcher.QuerySelector(root, list), nil
}

// QuerySelectorAll returns all descendants of root matching the selector
// in document order.
func QuerySelectorAll(root selector.Node, s string) ([]selector.Node, error) {
	list, err := selector.Parse(s)
	if err != nil {
		return nil, err
	}
	return defaultMatcher.QuerySelectorAll(root, list), nil
}

// Closest returns the nearest of n and its ancestors matching the
// selector, or nil.
func Closest(n selector.Node, s string) (selector.Node, error) {
	list, err := selector.Parse(s)
	if err != nil {
		return nil, err
	}
	return defaultMatcher.Closest(n, list), nil
}
