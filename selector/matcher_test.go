package selector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNode is a minimal synthetic tree for exercising the matcher without
// a full document implementation.
type testNode struct {
	tag      string
	attrs    map[string]string
	nsAttrs  map[string]string // "ns|name" -> value
	states   map[PseudoKind]bool
	parent   *testNode
	children []*testNode
}

func el(tag string, mods ...func(*testNode)) *testNode {
	n := &testNode{tag: tag}
	for _, mod := range mods {
		mod(n)
	}
	return n
}

func attr(name, value string) func(*testNode) {
	return func(n *testNode) {
		if n.attrs == nil {
			n.attrs = map[string]string{}
		}
		n.attrs[name] = value
	}
}

func nsAttr(ns, name, value string) func(*testNode) {
	return func(n *testNode) {
		if n.nsAttrs == nil {
			n.nsAttrs = map[string]string{}
		}
		n.nsAttrs[ns+"|"+name] = value
	}
}

func state(kind PseudoKind, on bool) func(*testNode) {
	return func(n *testNode) {
		if n.states == nil {
			n.states = map[PseudoKind]bool{}
		}
		n.states[kind] = on
	}
}

func kids(children ...*testNode) func(*testNode) {
	return func(n *testNode) {
		for _, c := range children {
			c.parent = n
			n.children = append(n.children, c)
		}
	}
}

func (n *testNode) index() int {
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (n *testNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) FirstChild() Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *testNode) NextSibling() Node {
	if n.parent == nil {
		return nil
	}
	if i := n.index(); i >= 0 && i+1 < len(n.parent.children) {
		return n.parent.children[i+1]
	}
	return nil
}

func (n *testNode) PrevSibling() Node {
	if n.parent == nil {
		return nil
	}
	if i := n.index(); i > 0 {
		return n.parent.children[i-1]
	}
	return nil
}

func (n *testNode) TagName() string { return n.tag }

func (n *testNode) ID() string { return n.attrs["id"] }

func (n *testNode) HasClass(name string) bool {
	for _, f := range strings.Fields(n.attrs["class"]) {
		if f == name {
			return true
		}
	}
	return false
}

func (n *testNode) HasAttribute(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

func (n *testNode) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *testNode) AttributeNS(ns, name string) (string, bool) {
	if ns == "*" {
		for key, v := range n.nsAttrs {
			if strings.HasSuffix(key, "|"+name) {
				return v, true
			}
		}
		v, ok := n.attrs[name]
		return v, ok
	}
	v, ok := n.nsAttrs[ns+"|"+name]
	return v, ok
}

func (n *testNode) State(kind PseudoKind) bool {
	if v, ok := n.states[kind]; ok {
		return v
	}
	return DefaultElementState(n, kind)
}

func matchSel(t *testing.T, n Node, sel string) bool {
	t.Helper()
	list, err := Parse(sel)
	require.NoError(t, err, "parse %q", sel)
	var m Matcher
	return m.Matches(n, list)
}

func TestMatchSimpleSelectors(t *testing.T) {
	div := el("div", attr("id", "main"), attr("class", "container wide"))

	tests := []struct {
		sel  string
		want bool
	}{
		{"div", true},
		{"DIV", true}, // HTML mode folds tag case
		{"span", false},
		{"*", true},
		{"#main", true},
		{"#other", false},
		{".container", true},
		{".wide", true},
		{".containe", false},
		{"div.container#main", true},
		{"div.container#other", false},
		{"span.container", false},
	}
	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			assert.Equal(t, tt.want, matchSel(t, div, tt.sel))
		})
	}
}

func TestMatchTagCaseSensitive(t *testing.T) {
	svg := el("svgElement")
	list := mustParse(t, "svgelement")
	m := Matcher{TagCaseSensitive: true}
	assert.False(t, m.Matches(svg, list))
	m = Matcher{}
	assert.True(t, m.Matches(svg, list))
}

func TestMatchAttributeOperators(t *testing.T) {
	a := el("a",
		attr("class", "foo bar baz"),
		attr("href", "https://github.com/seliq/doc.pdf"),
		attr("type", "text"),
		attr("lang", "en-US"),
	)

	tests := []struct {
		sel  string
		want bool
	}{
		{"[href]", true},
		{"[missing]", false},
		{`[class="foo bar baz"]`, true},
		{`[class="foo"]`, false},
		{`[class~="bar"]`, true},
		{`[class~="ba"]`, false},
		{`[class~="baz"]`, true},
		{`[href^="https"]`, true},
		{`[href^="http://"]`, false},
		{`[href$=".pdf"]`, true},
		{`[href$=".doc"]`, false},
		{`[href*="github"]`, true},
		{`[href*="gitlab"]`, false},
		{`[type="TEXT" i]`, true},
		{`[type="TEXT"]`, false},
		{`[lang|="en"]`, true},
		{`[lang|="en-US"]`, true},
		{`[lang|="e"]`, false},
	}
	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			assert.Equal(t, tt.want, matchSel(t, a, tt.sel))
		})
	}
}

func TestMatchNamespacedAttributes(t *testing.T) {
	use := el("use", nsAttr("xlink", "href", "#icon"))
	assert.True(t, matchSel(t, use, `[xlink|href]`))
	assert.True(t, matchSel(t, use, `[*|href]`))
	assert.True(t, matchSel(t, use, `[xlink|href="#icon"]`))
	assert.False(t, matchSel(t, use, `[other|href]`))
	assert.False(t, matchSel(t, use, `[href]`), "unqualified name does not see namespaced attribute")
}

func TestMatchCombinators(t *testing.T) {
	// <div id=root><p id=a/><ul id=list><li id=x/><li id=y/><li id=z/></ul></div>
	x := el("li", attr("id", "x"))
	y := el("li", attr("id", "y"))
	z := el("li", attr("id", "z"))
	list := el("ul", attr("id", "list"), kids(x, y, z))
	a := el("p", attr("id", "a"))
	el("div", attr("id", "root"), kids(a, list))

	tests := []struct {
		node *testNode
		sel  string
		want bool
	}{
		{x, "ul > li", true},
		{x, "div > li", false},
		{x, "div li", true},
		{x, "div ul li", true},
		{x, "p li", false},
		{y, "li + li", true},
		{x, "li + li", false},
		{y, "p + li", false},
		{z, "li ~ li", true},
		{z, "#x ~ li", true},
		{x, "li ~ li", false},
		{z, "#list > #x ~ li", true},
		{z, "#a #x ~ li", false}, // #x does not sit under #a
	}
	for _, tt := range tests {
		t.Run(tt.sel+"/"+tt.node.attrs["id"], func(t *testing.T) {
			assert.Equal(t, tt.want, matchSel(t, tt.node, tt.sel))
		})
	}
}

func TestMatchStructuralPseudoClasses(t *testing.T) {
	// <section><h2/><p id=p1/><p id=p2/><span/><p id=p3/></section>
	h2 := el("h2")
	p1 := el("p", attr("id", "p1"))
	p2 := el("p", attr("id", "p2"))
	span := el("span")
	p3 := el("p", attr("id", "p3"))
	section := el("section", kids(h2, p1, p2, span, p3))

	assert.True(t, matchSel(t, h2, ":first-child"))
	assert.False(t, matchSel(t, p1, ":first-child"))
	assert.True(t, matchSel(t, p3, ":last-child"))
	assert.False(t, matchSel(t, span, ":last-child"))
	assert.False(t, matchSel(t, p1, ":only-child"))
	assert.True(t, matchSel(t, h2, ":empty"))
	assert.False(t, matchSel(t, section, ":empty"))
	assert.True(t, matchSel(t, section, ":root"))
	assert.False(t, matchSel(t, h2, ":root"))

	assert.True(t, matchSel(t, h2, ":nth-child(1)"))
	assert.True(t, matchSel(t, p2, ":nth-child(3)"))
	assert.True(t, matchSel(t, h2, ":nth-child(odd)"))
	assert.True(t, matchSel(t, p2, ":nth-child(odd)"))
	assert.False(t, matchSel(t, p1, ":nth-child(odd)"))
	assert.True(t, matchSel(t, span, ":nth-last-child(2)"))
	assert.False(t, matchSel(t, p3, ":nth-last-child(2)"))

	assert.True(t, matchSel(t, h2, ":first-of-type"))
	assert.True(t, matchSel(t, p1, ":first-of-type"))
	assert.True(t, matchSel(t, p3, ":last-of-type"))
	assert.False(t, matchSel(t, p2, ":last-of-type"))
	assert.True(t, matchSel(t, h2, ":only-of-type"))
	assert.False(t, matchSel(t, p1, ":only-of-type"))
	assert.True(t, matchSel(t, span, ":only-of-type"))
	assert.True(t, matchSel(t, p2, ":nth-of-type(2)"))
	assert.True(t, matchSel(t, p2, ":nth-last-of-type(2)"))
	assert.False(t, matchSel(t, p2, ":nth-of-type(3)"))
	assert.True(t, matchSel(t, p3, ":nth-of-type(3)"))
}

func TestMatchOnlyChildTopology(t *testing.T) {
	only := el("p")
	el("div", kids(only))
	assert.True(t, matchSel(t, only, ":only-child"))
}

func TestMatchLogicalPseudoClasses(t *testing.T) {
	div := el("div", attr("class", "a"))

	tests := []struct {
		sel  string
		want bool
	}{
		{":not(.b)", true},
		{":not(.a)", false},
		{":not(.a, .b)", false},
		{":not(.b, .c)", true},
		{":not(span, .c)", true},
		{":not()", true}, // zero alternatives negated: matches everything
		{":is(.a)", true},
		{":is(.b)", false},
		{":is(.b, div)", true},
		{":is()", false},
		{":where(.a)", true},
		{":where(.b)", false},
		{"div:not(:is(.b)):is(.a, .c)", true},
	}
	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			assert.Equal(t, tt.want, matchSel(t, div, tt.sel))
		})
	}
}

func TestMatchHasCombinatorScoping(t *testing.T) {
	// <div id=p><span class=direct/><div><span class=nested/></div></div>
	direct := el("span", attr("class", "direct"))
	nested := el("span", attr("class", "nested"))
	inner := el("div", kids(nested))
	p := el("div", attr("id", "p"), kids(direct, inner))

	assert.True(t, matchSel(t, p, "div:has(> .direct)"))
	assert.False(t, matchSel(t, p, "div:has(> .nested)"))
	assert.True(t, matchSel(t, p, "div:has(.nested)"))
	assert.True(t, matchSel(t, p, "div:has(.direct)"))
	assert.False(t, matchSel(t, p, "div:has(.missing)"))
}

func TestMatchHasSiblingScoping(t *testing.T) {
	// <ul><li id=a/><li id=b class=x/><li id=c class=y/></ul>
	a := el("li", attr("id", "a"))
	b := el("li", attr("id", "b"), attr("class", "x"))
	c := el("li", attr("id", "c"), attr("class", "y"))
	el("ul", kids(a, b, c))

	assert.True(t, matchSel(t, a, ":has(+ .x)"))
	assert.False(t, matchSel(t, a, ":has(+ .y)"))
	assert.True(t, matchSel(t, a, ":has(~ .y)"))
	assert.False(t, matchSel(t, b, ":has(+ .x)"))
	assert.True(t, matchSel(t, b, ":has(+ .y)"))
	assert.False(t, matchSel(t, c, ":has(~ .x)"))
}

func TestMatchHasChainedRelative(t *testing.T) {
	// :has(> .a .b) wants a child .a with a .b somewhere below it.
	b := el("em", attr("class", "b"))
	mid := el("span", kids(b))
	achild := el("p", attr("class", "a"), kids(mid))
	anchor := el("div", kids(achild))

	assert.True(t, matchSel(t, anchor, ":has(> .a em)"))
	assert.True(t, matchSel(t, anchor, ":has(> .a > span)"))
	assert.False(t, matchSel(t, anchor, ":has(> em)"))
	assert.True(t, matchSel(t, anchor, ":has(.a em)"))
}

func TestMatchHasEmptyList(t *testing.T) {
	div := el("div", kids(el("span")))
	assert.False(t, matchSel(t, div, ":has()"), "zero alternatives match nothing")
}

func TestMatchStatePseudoClasses(t *testing.T) {
	tests := []struct {
		name string
		node *testNode
		sel  string
		want bool
	}{
		{"checked input", el("input", attr("checked", "")), ":checked", true},
		{"unchecked input", el("input"), ":checked", false},
		{"checked div gated", el("div", attr("checked", "")), ":checked", false},
		{"selected option", el("option", attr("selected", "")), ":checked", true},
		{"disabled input", el("input", attr("disabled", "")), ":disabled", true},
		{"enabled input", el("input"), ":enabled", true},
		{"disabled input not enabled", el("input", attr("disabled", "")), ":enabled", false},
		{"div not enabled", el("div"), ":enabled", false},
		{"required input", el("input", attr("required", "")), ":required", true},
		{"optional input", el("input"), ":optional", true},
		{"required not optional", el("input", attr("required", "")), ":optional", false},
		{"div not optional", el("div"), ":optional", false},
		{"valid input by default", el("input"), ":valid", true},
		{"invalid input flagged", el("input", attr("data-invalid", "")), ":invalid", true},
		{"div not valid", el("div"), ":valid", false},
		{"readonly input", el("input", attr("readonly", "")), ":read-only", true},
		{"plain input read-write", el("input"), ":read-write", true},
		{"div read-only", el("div"), ":read-only", true},
		{"div not read-write", el("div"), ":read-write", false},
		{"in range", el("input", attr("min", "1"), attr("max", "10"), attr("value", "5")), ":in-range", true},
		{"out of range", el("input", attr("min", "1"), attr("max", "10"), attr("value", "11")), ":out-of-range", true},
		{"no range constraint", el("input", attr("value", "5")), ":in-range", false},
		{"no range not out", el("input", attr("value", "5")), ":out-of-range", false},
		{"placeholder shown", el("input", attr("placeholder", "Name")), ":placeholder-shown", true},
		{"placeholder with value", el("input", attr("placeholder", "Name"), attr("value", "x")), ":placeholder-shown", false},
		{"default checkbox", el("input", attr("checked", "")), ":default", true},
		{"link", el("a", attr("href", "/")), ":link", true},
		{"anchor without href", el("a"), ":any-link", false},
		{"div with href gated", el("div", attr("href", "/")), ":link", false},
		{"hovered", el("div", state(PseudoHover, true)), ":hover", true},
		{"not hovered", el("div"), ":hover", false},
		{"focused", el("input", state(PseudoFocus, true)), ":focus", true},
		{"focus visible", el("input", state(PseudoFocusVisible, true)), ":focus-visible", true},
		{"active", el("button", state(PseudoActive, true)), ":active", true},
		{"target", el("section", state(PseudoTarget, true)), ":target", true},
		{"not target", el("section"), ":target", false},
		{"defined by default", el("custom-element"), ":defined", true},
		{"undefined flagged", el("custom-element", state(PseudoDefined, false)), ":defined", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchSel(t, tt.node, tt.sel))
		})
	}
}

func TestMatchEndToEndFormControl(t *testing.T) {
	input := el("input", attr("type", "text"), attr("required", ""))
	ok := matchSel(t, input, "input[type='text']:enabled[required]")
	assert.True(t, ok)

	input.attrs["disabled"] = ""
	ok = matchSel(t, input, "input[type='text']:enabled[required]")
	assert.False(t, ok)
}

func TestMatchLeniency(t *testing.T) {
	div := el("div")

	// A trailing pseudo-element answers for the originating element.
	assert.True(t, matchSel(t, div, "div::before"))
	assert.Equal(t, matchSel(t, div, "div"), matchSel(t, div, "div::before"))

	// Unknown pseudo-classes match unconditionally, and a functional
	// form's balanced argument is skipped without inspection.
	assert.True(t, matchSel(t, div, ":frobnicate"))
	assert.True(t, matchSel(t, div, "div:frobnicate"))
	assert.False(t, matchSel(t, div, "span:frobnicate"))
	assert.True(t, matchSel(t, div, "div:frobnicate(nested (parens))"))
	assert.False(t, matchSel(t, div, "span:frobnicate(x)"))
}

func TestMatchNthArgumentWhitespace(t *testing.T) {
	// <ul><li/><li/><li/><li/></ul>
	items := []*testNode{el("li"), el("li"), el("li"), el("li")}
	el("ul", kids(items...))

	for i, li := range items {
		want := (i+1)%2 == 1
		assert.Equal(t, want, matchSel(t, li, ":nth-child( 2n + 1 )"), "item %d", i+1)
		wantHead := i+1 <= 3
		assert.Equal(t, wantHead, matchSel(t, li, ":nth-child(-n+3)"), "item %d", i+1)
	}
}

func TestMatchSelectorListIsUnion(t *testing.T) {
	div := el("div", attr("class", "a"))
	span := el("span")

	for _, n := range []*testNode{div, span} {
		left := matchSel(t, n, "div.a, span")
		right := matchSel(t, n, "div.a") || matchSel(t, n, "span")
		assert.Equal(t, right, left)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	div := el("div", attr("class", "a"), kids(el("span")))
	list := mustParse(t, "div.a:has(span):not(.b)")
	var m Matcher
	first := m.Matches(div, list)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Matches(div, list))
	}
}
