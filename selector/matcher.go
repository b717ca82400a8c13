package selector

import "strings"

// Matcher decides whether tree nodes satisfy parsed selectors. It is
// stateless across calls: every answer is derived from the node, the AST
// and current tree state. The zero value matches tag names
// case-insensitively, which is the HTML document mode.
type Matcher struct {
	// TagCaseSensitive compares tag names byte for byte, as XML-mode
	// documents require.
	TagCaseSensitive bool
}

// Matches reports whether the node satisfies any member of the list.
func (m *Matcher) Matches(n Node, list *SelectorList) bool {
	if n == nil || list == nil {
		return false
	}
	for i := range list.Selectors {
		if m.matchComplex(n, &list.Selectors[i]) {
			return true
		}
	}
	return false
}

// matchComplex evaluates a complex selector right to left: the rightmost
// compound must match n, then each combinator dictates where to look for
// a node matching the rest of the chain.
func (m *Matcher) matchComplex(n Node, c *ComplexSelector) bool {
	return m.matchUnits(n, c.Units)
}

func (m *Matcher) matchUnits(n Node, units []SelectorUnit) bool {
	last := len(units) - 1
	if !m.matchCompound(n, &units[last].Compound) {
		return false
	}
	if last == 0 {
		return true
	}
	rest := units[:last]
	switch units[last].Combinator {
	case CombinatorChild:
		p := n.Parent()
		return p != nil && m.matchUnits(p, rest)
	case CombinatorDescendant:
		for p := n.Parent(); p != nil; p = p.Parent() {
			if m.matchUnits(p, rest) {
				return true
			}
		}
		return false
	case CombinatorAdjacent:
		s := n.PrevSibling()
		return s != nil && m.matchUnits(s, rest)
	case CombinatorGeneral:
		for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
			if m.matchUnits(s, rest) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// matchCompound is a logical AND over the compound's simple selectors.
func (m *Matcher) matchCompound(n Node, c *CompoundSelector) bool {
	for i := range c.Selectors {
		if !m.matchSimple(n, &c.Selectors[i]) {
			return false
		}
	}
	return true
}

func (m *Matcher) matchSimple(n Node, s *SimpleSelector) bool {
	switch s.Kind {
	case SimpleType:
		return m.tagEqual(n.TagName(), s.Name)
	case SimpleUniversal:
		return true
	case SimpleID:
		return n.ID() == s.Name
	case SimpleClass:
		return n.HasClass(s.Name)
	case SimpleAttribute:
		return m.matchAttribute(n, s)
	case SimplePseudoClass:
		return m.matchPseudo(n, s)
	case SimplePseudoElement:
		// Pseudo-elements are satisfied vacuously: the question answered
		// here is whether the originating element matches.
		return true
	default:
		return false
	}
}

func (m *Matcher) tagEqual(a, b string) bool {
	if m.TagCaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func (m *Matcher) matchAttribute(n Node, s *SimpleSelector) bool {
	var (
		value string
		ok    bool
	)
	if s.Namespace != "" {
		value, ok = n.AttributeNS(s.Namespace, s.Name)
	} else {
		value, ok = n.Attribute(s.Name)
	}
	if !ok {
		return false
	}
	if s.Op == AttrPresent {
		return true
	}

	want := s.Value
	if s.CaseInsensitive {
		value = strings.ToLower(value)
	}
	switch s.Op {
	case AttrEquals:
		return value == want
	case AttrIncludes:
		if want == "" || strings.ContainsAny(want, " \t\n\r\f") {
			return false
		}
		for _, field := range strings.Fields(value) {
			if field == want {
				return true
			}
		}
		return false
	case AttrDashMatch:
		return value == want || strings.HasPrefix(value, want+"-")
	case AttrPrefix:
		return want != "" && strings.HasPrefix(value, want)
	case AttrSuffix:
		return want != "" && strings.HasSuffix(value, want)
	case AttrSubstring:
		return want != "" && strings.Contains(value, want)
	default:
		return false
	}
}

func (m *Matcher) matchPseudo(n Node, s *SimpleSelector) bool {
	switch s.Pseudo {
	case PseudoFirstChild:
		return n.PrevSibling() == nil
	case PseudoLastChild:
		return n.NextSibling() == nil
	case PseudoOnlyChild:
		return n.PrevSibling() == nil && n.NextSibling() == nil
	case PseudoNthChild:
		return s.Nth != nil && s.Nth.Matches(siblingIndex(n))
	case PseudoNthLastChild:
		return s.Nth != nil && s.Nth.Matches(siblingIndexFromEnd(n))
	case PseudoFirstOfType:
		return m.prevOfType(n) == nil
	case PseudoLastOfType:
		return m.nextOfType(n) == nil
	case PseudoOnlyOfType:
		return m.prevOfType(n) == nil && m.nextOfType(n) == nil
	case PseudoNthOfType:
		return s.Nth != nil && s.Nth.Matches(m.typeIndex(n))
	case PseudoNthLastOfType:
		return s.Nth != nil && s.Nth.Matches(m.typeIndexFromEnd(n))
	case PseudoEmpty:
		return n.FirstChild() == nil
	case PseudoRoot:
		return n.Parent() == nil

	case PseudoNot:
		// A list with zero alternatives matches nothing, so its negation
		// matches everything. Deliberate; see the package tests.
		return !m.Matches(n, s.List)
	case PseudoIs, PseudoWhere:
		// :where differs from :is only in specificity, which this engine
		// does not compute.
		return m.Matches(n, s.List)

	case PseudoHas:
		return m.matchHas(n, s.List)

	case PseudoChecked, PseudoDisabled, PseudoEnabled, PseudoRequired,
		PseudoOptional, PseudoValid, PseudoInvalid, PseudoReadOnly,
		PseudoReadWrite, PseudoInRange, PseudoOutOfRange,
		PseudoPlaceholderShown, PseudoDefault, PseudoHover, PseudoActive,
		PseudoFocus, PseudoFocusVisible, PseudoTarget, PseudoDefined,
		PseudoAnyLink, PseudoLink:
		if !m.stateApplies(n, s.Pseudo) {
			return false
		}
		return n.State(s.Pseudo)

	case PseudoUnknown:
		// Unknown pseudo-classes match unconditionally. Part of the
		// engine's documented leniency; do not change without revisiting
		// the contract.
		return true
	default:
		return true
	}
}

// stateApplies gates state pseudo-classes by element type: a predicate
// about form-control state always fails on elements that have no such
// state.
func (m *Matcher) stateApplies(n Node, kind PseudoKind) bool {
	tag := strings.ToLower(n.TagName())
	switch kind {
	case PseudoChecked, PseudoDefault:
		return tag == "input" || tag == "option"
	case PseudoDisabled, PseudoEnabled:
		switch tag {
		case "input", "button", "select", "textarea", "option", "optgroup", "fieldset":
			return true
		}
		return false
	case PseudoRequired, PseudoOptional:
		return tag == "input" || tag == "select" || tag == "textarea"
	case PseudoValid, PseudoInvalid:
		return tag == "input" || tag == "select" || tag == "textarea" || tag == "form"
	case PseudoInRange, PseudoOutOfRange:
		return tag == "input"
	case PseudoPlaceholderShown:
		return tag == "input" || tag == "textarea"
	case PseudoAnyLink, PseudoLink:
		return tag == "a" || tag == "area"
	default:
		return true
	}
}

// matchHas evaluates relative selectors forward from the anchor: a leading
// combinator (descendant when omitted) picks the search region, and each
// further combinator continues rightward or downward from the node just
// matched. This is the mirror image of the right-to-left walk above.
func (m *Matcher) matchHas(anchor Node, list *SelectorList) bool {
	if list == nil {
		return false
	}
	for i := range list.Selectors {
		if m.relativeMatch(anchor, list.Selectors[i].Units) {
			return true
		}
	}
	return false
}

func (m *Matcher) relativeMatch(anchor Node, units []SelectorUnit) bool {
	if len(units) == 0 {
		return false
	}
	comb := units[0].Combinator
	if comb == CombinatorNone {
		comb = CombinatorDescendant
	}
	step := func(candidate Node) bool {
		if !m.matchCompound(candidate, &units[0].Compound) {
			return false
		}
		if len(units) == 1 {
			return true
		}
		return m.relativeMatch(candidate, units[1:])
	}

	switch comb {
	case CombinatorChild:
		for c := anchor.FirstChild(); c != nil; c = c.NextSibling() {
			if step(c) {
				return true
			}
		}
	case CombinatorDescendant:
		return walkDescendants(anchor, step)
	case CombinatorAdjacent:
		if s := anchor.NextSibling(); s != nil {
			return step(s)
		}
	case CombinatorGeneral:
		for s := anchor.NextSibling(); s != nil; s = s.NextSibling() {
			if step(s) {
				return true
			}
		}
	}
	return false
}

// walkDescendants visits the subtree below n in document order, stopping
// early when visit reports a match.
func walkDescendants(n Node, visit func(Node) bool) bool {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if visit(c) {
			return true
		}
		if walkDescendants(c, visit) {
			return true
		}
	}
	return false
}

// siblingIndex is the 1-based position of n among its element siblings.
func siblingIndex(n Node) int {
	i := 1
	for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
		i++
	}
	return i
}

func siblingIndexFromEnd(n Node) int {
	i := 1
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		i++
	}
	return i
}

func (m *Matcher) prevOfType(n Node) Node {
	tag := n.TagName()
	for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
		if m.tagEqual(s.TagName(), tag) {
			return s
		}
	}
	return nil
}

func (m *Matcher) nextOfType(n Node) Node {
	tag := n.TagName()
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if m.tagEqual(s.TagName(), tag) {
			return s
		}
	}
	return nil
}

func (m *Matcher) typeIndex(n Node) int {
	tag := n.TagName()
	i := 1
	for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
		if m.tagEqual(s.TagName(), tag) {
			i++
		}
	}
	return i
}

func (m *Matcher) typeIndexFromEnd(n Node) int {
	tag := n.TagName()
	i := 1
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if m.tagEqual(s.TagName(), tag) {
			i++
		}
	}
	return i
}
