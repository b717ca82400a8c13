package selector

// PseudoKind identifies a pseudo-class. The set is closed: dispatch in the
// matcher is an exhaustive switch, not open virtual dispatch, because the
// grammar fixes the set at compile time.
type PseudoKind int

const (
	// PseudoUnknown is any pseudo-class name outside the known set. It
	// matches unconditionally; see the matcher for the rationale.
	PseudoUnknown PseudoKind = iota

	// Structural pseudo-classes, computed from tree topology alone.
	PseudoFirstChild
	PseudoLastChild
	PseudoOnlyChild
	PseudoNthChild
	PseudoNthLastChild
	PseudoFirstOfType
	PseudoLastOfType
	PseudoOnlyOfType
	PseudoNthOfType
	PseudoNthLastOfType
	PseudoEmpty
	PseudoRoot

	// Logical pseudo-classes holding nested selector lists.
	PseudoNot
	PseudoIs
	PseudoWhere

	// Relational pseudo-class; its list members are relative selectors.
	PseudoHas

	// State pseudo-classes, each answered by one element-state query.
	PseudoChecked
	PseudoDisabled
	PseudoEnabled
	PseudoRequired
	PseudoOptional
	PseudoValid
	PseudoInvalid
	PseudoReadOnly
	PseudoReadWrite
	PseudoInRange
	PseudoOutOfRange
	PseudoPlaceholderShown
	PseudoDefault
	PseudoHover
	PseudoActive
	PseudoFocus
	PseudoFocusVisible
	PseudoTarget
	PseudoDefined
	PseudoAnyLink
	PseudoLink
)

var pseudoKinds = map[string]PseudoKind{
	"first-child":       PseudoFirstChild,
	"last-child":        PseudoLastChild,
	"only-child":        PseudoOnlyChild,
	"nth-child":         PseudoNthChild,
	"nth-last-child":    PseudoNthLastChild,
	"first-of-type":     PseudoFirstOfType,
	"last-of-type":      PseudoLastOfType,
	"only-of-type":      PseudoOnlyOfType,
	"nth-of-type":       PseudoNthOfType,
	"nth-last-of-type":  PseudoNthLastOfType,
	"empty":             PseudoEmpty,
	"root":              PseudoRoot,
	"not":               PseudoNot,
	"is":                PseudoIs,
	"where":             PseudoWhere,
	"has":               PseudoHas,
	"checked":           PseudoChecked,
	"disabled":          PseudoDisabled,
	"enabled":           PseudoEnabled,
	"required":          PseudoRequired,
	"optional":          PseudoOptional,
	"valid":             PseudoValid,
	"invalid":           PseudoInvalid,
	"read-only":         PseudoReadOnly,
	"read-write":        PseudoReadWrite,
	"in-range":          PseudoInRange,
	"out-of-range":      PseudoOutOfRange,
	"placeholder-shown": PseudoPlaceholderShown,
	"default":           PseudoDefault,
	"hover":             PseudoHover,
	"active":            PseudoActive,
	"focus":             PseudoFocus,
	"focus-visible":     PseudoFocusVisible,
	"target":            PseudoTarget,
	"defined":           PseudoDefined,
	"any-link":          PseudoAnyLink,
	"link":              PseudoLink,
}

// legacyPseudoElements are the single-colon forms browsers still accept.
var legacyPseudoElements = map[string]bool{
	"before":       true,
	"after":        true,
	"first-line":   true,
	"first-letter": true,
}

// LookupPseudo maps a pseudo-class name (already lowercased) to its kind.
func LookupPseudo(name string) PseudoKind {
	return pseudoKinds[name]
}

// takesSelectorList reports whether the functional argument is a nested
// selector list.
func (k PseudoKind) takesSelectorList() bool {
	switch k {
	case PseudoNot, PseudoIs, PseudoWhere, PseudoHas:
		return true
	}
	return false
}

// takesNth reports whether the functional argument is an An+B formula.
func (k PseudoKind) takesNth() bool {
	switch k {
	case PseudoNthChild, PseudoNthLastChild, PseudoNthOfType, PseudoNthLastOfType:
		return true
	}
	return false
}
