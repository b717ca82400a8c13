// Package selector implements a CSS-style selector engine for DOM-like
// trees.
//
// The pipeline has three stages. Tokenize turns a selector string into a
// flat token sequence with no grammar knowledge. Parse consumes the tokens
// with a recursive-descent parser and builds a SelectorList: alternative
// complex selectors, each a chain of compound selectors joined by
// combinators, recursing into nested lists for :not(), :is(), :where()
// and :has(). Matcher evaluates a parsed list against a node, walking the
// tree through the Node interface so any tree shape can be queried.
//
// A parsed SelectorList holds no references into any tree, so callers may
// compile a selector once and reuse it against many nodes:
//
//	list, err := selector.Parse("nav a[href^='https']:not(.external)")
//	if err != nil {
//		return err
//	}
//	var m selector.Matcher
//	ok := m.Matches(node, list)
//
// Matching follows browser-engine conventions for non-rendering consumers:
// pseudo-elements parse but never reject a match, and unknown
// pseudo-classes match unconditionally.
package selector
