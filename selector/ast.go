package selector

import (
	"fmt"
	"strings"
)

// Combinator relates two compound selectors by tree position.
type Combinator int

const (
	// CombinatorNone marks the first compound of a complex selector.
	CombinatorNone Combinator = iota
	// CombinatorDescendant is the whitespace combinator.
	CombinatorDescendant
	// CombinatorChild is `>`.
	CombinatorChild
	// CombinatorAdjacent is `+`.
	CombinatorAdjacent
	// CombinatorGeneral is `~`.
	CombinatorGeneral
)

func (c Combinator) String() string {
	switch c {
	case CombinatorDescendant:
		return " "
	case CombinatorChild:
		return " > "
	case CombinatorAdjacent:
		return " + "
	case CombinatorGeneral:
		return " ~ "
	default:
		return ""
	}
}

// SelectorList is an ordered sequence of alternative complex selectors.
// A node matches the list if it matches any member.
type SelectorList struct {
	Selectors []ComplexSelector
}

func (l *SelectorList) String() string {
	parts := make([]string, len(l.Selectors))
	for i := range l.Selectors {
		parts[i] = l.Selectors[i].String()
	}
	return strings.Join(parts, ", ")
}

// ComplexSelector is a chain of compound selectors joined by combinators.
// Units run left to right; Units[0].Combinator is CombinatorNone except in
// relative selectors (arguments of :has), where a leading combinator
// anchors the chain to the element being tested.
type ComplexSelector struct {
	Units []SelectorUnit
}

func (c *ComplexSelector) String() string {
	var b strings.Builder
	for i := range c.Units {
		b.WriteString(c.Units[i].Combinator.String())
		b.WriteString(c.Units[i].Compound.String())
	}
	return strings.TrimLeft(b.String(), " ")
}

// SelectorUnit pairs a compound selector with the combinator that relates
// it to the compound on its left.
type SelectorUnit struct {
	Combinator Combinator
	Compound   CompoundSelector
}

// CompoundSelector is a set of simple selectors that must all match the
// same node.
type CompoundSelector struct {
	Selectors []SimpleSelector
}

func (c *CompoundSelector) String() string {
	var b strings.Builder
	for i := range c.Selectors {
		b.WriteString(c.Selectors[i].String())
	}
	return b.String()
}

// SimpleKind tags the variants of SimpleSelector.
type SimpleKind int

const (
	SimpleType          SimpleKind = iota // tag name
	SimpleUniversal                       // `*`
	SimpleID                              // `#id`
	SimpleClass                           // `.class`
	SimpleAttribute                       // `[attr...]`
	SimplePseudoClass                     // `:name` or `:name(...)`
	SimplePseudoElement                   // `::name`, parsed but never matched against
)

// AttrOp is an attribute value comparison operator.
type AttrOp int

const (
	AttrPresent   AttrOp = iota // bare [attr]
	AttrEquals                  // =
	AttrIncludes                // ~=
	AttrDashMatch               // |=
	AttrPrefix                  // ^=
	AttrSuffix                  // $=
	AttrSubstring               // *=
)

func (op AttrOp) String() string {
	switch op {
	case AttrEquals:
		return "="
	case AttrIncludes:
		return "~="
	case AttrDashMatch:
		return "|="
	case AttrPrefix:
		return "^="
	case AttrSuffix:
		return "$="
	case AttrSubstring:
		return "*="
	default:
		return ""
	}
}

// SimpleSelector is one predicate over a single node. It is a closed
// tagged union: Kind selects the variant and decides which fields are
// meaningful. All fields are immutable once parsed.
type SimpleSelector struct {
	Kind SimpleKind

	// Name holds the tag name, id, class, attribute name, or pseudo name.
	Name string

	// Namespace qualifies an attribute name: "" for none, "*" for any.
	Namespace string

	// Attribute comparison; Op is AttrPresent for a bare [attr] test.
	Op              AttrOp
	Value           string
	CaseInsensitive bool

	// Pseudo-class dispatch kind; PseudoUnknown for names outside the
	// closed set (those match unconditionally).
	Pseudo PseudoKind

	// List holds the nested selector list of :not, :is, :where and :has.
	List *SelectorList

	// Nth holds the An+B formula of the :nth-* family.
	Nth *NthFormula
}

func (s *SimpleSelector) String() string {
	switch s.Kind {
	case SimpleType:
		return s.Name
	case SimpleUniversal:
		return "*"
	case SimpleID:
		return "#" + s.Name
	case SimpleClass:
		return "." + s.Name
	case SimpleAttribute:
		name := s.Name
		if s.Namespace != "" {
			name = s.Namespace + "|" + name
		}
		if s.Op == AttrPresent {
			return "[" + name + "]"
		}
		flag := ""
		if s.CaseInsensitive {
			flag = " i"
		}
		return fmt.Sprintf("[%s%s%q%s]", name, s.Op, s.Value, flag)
	case SimplePseudoClass:
		switch {
		case s.List != nil:
			return ":" + s.Name + "(" + s.List.String() + ")"
		case s.Nth != nil:
			return ":" + s.Name + "(" + s.Nth.String() + ")"
		default:
			return ":" + s.Name
		}
	case SimplePseudoElement:
		return "::" + s.Name
	default:
		return ""
	}
}
