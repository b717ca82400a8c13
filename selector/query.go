package selector

// QuerySelector returns the first descendant of root, in document order,
// matching the list. The root itself is never a candidate.
func (m *Matcher) QuerySelector(root Node, list *SelectorList) Node {
	if root == nil || list == nil {
		return nil
	}
	var found Node
	walkDescendants(root, func(n Node) bool {
		if m.Matches(n, list) {
			found = n
			return true
		}
		return false
	})
	return found
}

// QuerySelectorAll returns every descendant of root matching the list, in
// document order. Each node is visited exactly once, so the result holds
// no duplicates.
func (m *Matcher) QuerySelectorAll(root Node, list *SelectorList) []Node {
	if root == nil || list == nil {
		return nil
	}
	var out []Node
	walkDescendants(root, func(n Node) bool {
		if m.Matches(n, list) {
			out = append(out, n)
		}
		return false
	})
	return out
}

// Closest returns the nearest node matching the list, testing n itself
// first and then each ancestor in turn, or nil when none match.
func (m *Matcher) Closest(n Node, list *SelectorList) Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if m.Matches(cur, list) {
			return cur
		}
	}
	return nil
}
