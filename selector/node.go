package selector

import (
	"strconv"
	"strings"
)

// Node is the read-only capability set the matcher needs from a tree. All
// navigation methods present an element-only view: text and comment nodes
// are skipped by the implementation, and absent relatives are nil.
//
// The matcher never mutates the tree and keeps no references past the end
// of a call. The tree must not be mutated concurrently with a match.
type Node interface {
	Parent() Node
	FirstChild() Node
	NextSibling() Node
	PrevSibling() Node

	TagName() string
	ID() string
	HasClass(name string) bool
	HasAttribute(name string) bool
	Attribute(name string) (string, bool)
	// AttributeNS looks up an attribute in a namespace; ns "*" matches any.
	AttributeNS(ns, name string) (string, bool)

	// State answers one state pseudo-class query (PseudoChecked,
	// PseudoHover, ...). Implementations typically overlay tracked
	// interaction flags on DefaultElementState.
	State(kind PseudoKind) bool
}

// DefaultElementState answers state pseudo-class queries from element
// attributes alone, with the documented defaults when the backing
// attribute is absent: :valid and :defined hold, :in-range does not hold
// without a range constraint, :optional and :enabled hold, and the pure
// interaction states (hover, focus, active, target) do not hold.
//
// Tree implementations that track interaction state call this for the
// attribute-backed kinds and answer the rest from their own flags.
func DefaultElementState(n Node, kind PseudoKind) bool {
	switch kind {
	case PseudoChecked:
		return n.HasAttribute("checked") || n.HasAttribute("selected")
	case PseudoDisabled:
		return n.HasAttribute("disabled")
	case PseudoEnabled:
		return !n.HasAttribute("disabled")
	case PseudoRequired:
		return n.HasAttribute("required")
	case PseudoOptional:
		return !n.HasAttribute("required")
	case PseudoValid:
		return !n.HasAttribute("data-invalid")
	case PseudoInvalid:
		return n.HasAttribute("data-invalid")
	case PseudoReadOnly:
		return !editable(n)
	case PseudoReadWrite:
		return editable(n)
	case PseudoInRange:
		in, constrained := rangeState(n)
		return constrained && in
	case PseudoOutOfRange:
		in, constrained := rangeState(n)
		return constrained && !in
	case PseudoPlaceholderShown:
		if !n.HasAttribute("placeholder") {
			return false
		}
		v, _ := n.Attribute("value")
		return v == ""
	case PseudoDefault:
		return n.HasAttribute("checked") || n.HasAttribute("selected")
	case PseudoAnyLink, PseudoLink:
		return n.HasAttribute("href")
	case PseudoDefined:
		return true
	case PseudoHover, PseudoActive, PseudoFocus, PseudoFocusVisible, PseudoTarget:
		return false
	default:
		return false
	}
}

// editable reports whether a node is a text-entry control that is neither
// read-only nor disabled.
func editable(n Node) bool {
	switch strings.ToLower(n.TagName()) {
	case "input", "textarea":
		return !n.HasAttribute("readonly") && !n.HasAttribute("disabled")
	}
	return false
}

// rangeState evaluates min/max constraints against the value attribute.
// The second result is false when the element carries no range constraint.
func rangeState(n Node) (in, constrained bool) {
	minRaw, hasMin := n.Attribute("min")
	maxRaw, hasMax := n.Attribute("max")
	if !hasMin && !hasMax {
		return false, false
	}
	raw, ok := n.Attribute("value")
	if !ok {
		return false, true
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false, true
	}
	if hasMin {
		if lo, err := strconv.ParseFloat(strings.TrimSpace(minRaw), 64); err == nil && value < lo {
			return false, true
		}
	}
	if hasMax {
		if hi, err := strconv.ParseFloat(strings.TrimSpace(maxRaw), 64); err == nil && value > hi {
			return false, true
		}
	}
	return true, true
}
