// Package dom provides a lightweight element tree for building and
// querying documents in memory. It implements selector.Node, so every
// element supports Matches, Closest, QuerySelector and QuerySelectorAll
// directly.
//
// The tree is element-only: there are no text or comment nodes. It is not
// safe for concurrent mutation; callers synchronize externally.
package dom

import (
	"strings"

	"github.com/seliq/seliq/selector"
)

// Attr is a single attribute. Namespace is empty for ordinary attributes.
type Attr struct {
	Namespace string
	Name      string
	Value     string
}

// Element is a node of the tree. The zero value is not usable; create
// elements with NewElement.
type Element struct {
	tag string

	parent      *Element
	firstChild  *Element
	lastChild   *Element
	prevSibling *Element
	nextSibling *Element

	attrs  []Attr
	states map[selector.PseudoKind]bool
}

// NewElement creates a detached element with the given tag name. Tag
// names are stored lowercased, matching HTML document behavior.
func NewElement(tag string) *Element {
	return &Element{tag: strings.ToLower(tag)}
}

// AppendChild adds c as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(c *Element) {
	if c == nil || c == e {
		return
	}
	c.Detach()
	c.parent = e
	if e.lastChild == nil {
		e.firstChild = c
		e.lastChild = c
		return
	}
	c.prevSibling = e.lastChild
	e.lastChild.nextSibling = c
	e.lastChild = c
}

// InsertBefore inserts c as a child of e immediately before ref. A nil
// ref appends.
func (e *Element) InsertBefore(c, ref *Element) {
	if c == nil || c == e {
		return
	}
	if ref == nil || ref.parent != e {
		e.AppendChild(c)
		return
	}
	c.Detach()
	c.parent = e
	c.nextSibling = ref
	c.prevSibling = ref.prevSibling
	if ref.prevSibling != nil {
		ref.prevSibling.nextSibling = c
	} else {
		e.firstChild = c
	}
	ref.prevSibling = c
}

// Detach removes e from its parent, leaving it the root of its own
// subtree.
func (e *Element) Detach() {
	if e.parent == nil {
		return
	}
	if e.prevSibling != nil {
		e.prevSibling.nextSibling = e.nextSibling
	} else {
		e.parent.firstChild = e.nextSibling
	}
	if e.nextSibling != nil {
		e.nextSibling.prevSibling = e.prevSibling
	} else {
		e.parent.lastChild = e.prevSibling
	}
	e.parent = nil
	e.prevSibling = nil
	e.nextSibling = nil
}

// Children returns the child elements in order.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// SetAttribute sets an attribute, replacing any existing value. Names are
// stored lowercased; selector matching compares names byte for byte, so
// write selectors with lowercase attribute names (`[required]`, not
// `[REQUIRED]`), exactly as for trees parsed from HTML.
func (e *Element) SetAttribute(name, value string) {
	e.setAttr("", strings.ToLower(name), value)
}

// SetAttributeNS sets a namespaced attribute.
func (e *Element) SetAttributeNS(ns, name, value string) {
	e.setAttr(ns, strings.ToLower(name), value)
}

func (e *Element) setAttr(ns, name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name && e.attrs[i].Namespace == ns {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Namespace: ns, Name: name, Value: value})
}

// RemoveAttribute deletes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i := range e.attrs {
		if e.attrs[i].Name == name && e.attrs[i].Namespace == "" {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// GetAttribute returns an attribute value, or "" when absent.
func (e *Element) GetAttribute(name string) string {
	v, _ := e.Attribute(strings.ToLower(name))
	return v
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) {
	e.SetAttribute("id", id)
}

// SetClassName sets the class attribute from a space-separated list.
func (e *Element) SetClassName(classes string) {
	e.SetAttribute("class", classes)
}

// AddClass appends a class token if not already present.
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	cur := e.GetAttribute("class")
	if cur == "" {
		e.SetAttribute("class", name)
		return
	}
	e.SetAttribute("class", cur+" "+name)
}

// RemoveClass deletes a class token if present.
func (e *Element) RemoveClass(name string) {
	fields := strings.Fields(e.GetAttribute("class"))
	kept := fields[:0]
	for _, f := range fields {
		if f != name {
			kept = append(kept, f)
		}
	}
	e.SetAttribute("class", strings.Join(kept, " "))
}

// ClassList returns the class tokens in attribute order.
func (e *Element) ClassList() []string {
	return strings.Fields(e.GetAttribute("class"))
}

// SetState sets or clears a tracked interaction state such as
// selector.PseudoHover, selector.PseudoFocus or selector.PseudoTarget.
// Tracked states take precedence over the attribute-backed defaults.
func (e *Element) SetState(kind selector.PseudoKind, on bool) {
	if e.states == nil {
		e.states = make(map[selector.PseudoKind]bool)
	}
	e.states[kind] = on
}

// ClearState removes a tracked state, restoring the default answer.
func (e *Element) ClearState(kind selector.PseudoKind) {
	delete(e.states, kind)
}
