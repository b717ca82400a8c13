package dom

import (
	"strings"

	"github.com/seliq/seliq/selector"
)

// Element implements the navigation and query interface the matcher
// consumes. Methods return nil interfaces, never typed nils, when a
// relative is absent.
var _ selector.Node = (*Element)(nil)

func (e *Element) Parent() selector.Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *Element) FirstChild() selector.Node {
	if e.firstChild == nil {
		return nil
	}
	return e.firstChild
}

func (e *Element) NextSibling() selector.Node {
	if e.nextSibling == nil {
		return nil
	}
	return e.nextSibling
}

func (e *Element) PrevSibling() selector.Node {
	if e.prevSibling == nil {
		return nil
	}
	return e.prevSibling
}

func (e *Element) TagName() string {
	return e.tag
}

func (e *Element) ID() string {
	v, _ := e.Attribute("id")
	return v
}

func (e *Element) HasClass(name string) bool {
	for _, f := range strings.Fields(e.GetAttribute("class")) {
		if f == name {
			return true
		}
	}
	return false
}

func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attribute(name)
	return ok
}

func (e *Element) Attribute(name string) (string, bool) {
	for i := range e.attrs {
		if e.attrs[i].Name == name && e.attrs[i].Namespace == "" {
			return e.attrs[i].Value, true
		}
	}
	return "", false
}

func (e *Element) AttributeNS(ns, name string) (string, bool) {
	for i := range e.attrs {
		if e.attrs[i].Name != name {
			continue
		}
		if ns == "*" || e.attrs[i].Namespace == ns {
			return e.attrs[i].Value, true
		}
	}
	return "", false
}

func (e *Element) State(kind selector.PseudoKind) bool {
	if v, ok := e.states[kind]; ok {
		return v
	}
	return selector.DefaultElementState(e, kind)
}
