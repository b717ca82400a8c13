package selector

import "fmt"

// LexErrorKind enumerates the ways tokenization can fail.
type LexErrorKind int

const (
	// LexUnterminatedString reports a string literal with no closing quote,
	// or one broken by an unescaped newline.
	LexUnterminatedString LexErrorKind = iota
	// LexUnterminatedBracket reports a `[` with no matching `]`.
	LexUnterminatedBracket
)

// LexError describes a lexical error in a selector string.
type LexError struct {
	Kind     LexErrorKind
	Position int
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexUnterminatedString:
		return fmt.Sprintf("unterminated string literal at offset %d", e.Position)
	case LexUnterminatedBracket:
		return fmt.Sprintf("unterminated attribute bracket at offset %d", e.Position)
	default:
		return fmt.Sprintf("lexical error at offset %d", e.Position)
	}
}

// ParseErrorKind enumerates the ways parsing can fail.
type ParseErrorKind int

const (
	// ParseUnexpectedToken reports a token that cannot appear where it did.
	ParseUnexpectedToken ParseErrorKind = iota
	// ParseEmptyCompound reports a position where a compound selector was
	// required but none was found (stray comma, empty selector string).
	ParseEmptyCompound
	// ParseUnbalancedParen reports a functional pseudo-class whose
	// parentheses do not balance.
	ParseUnbalancedParen
	// ParseInvalidNth reports a malformed An+B formula in an :nth-* argument.
	ParseInvalidNth
	// ParseTrailingCombinator reports a combinator with no compound
	// selector after it.
	ParseTrailingCombinator
)

// ParseError describes a grammar error in a selector string.
type ParseError struct {
	Kind     ParseErrorKind
	Position int
	Token    string // literal text of the offending token, if any
	Detail   string // optional extra context
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseUnexpectedToken:
		return fmt.Sprintf("unexpected %q at offset %d", e.Token, e.Position)
	case ParseEmptyCompound:
		return fmt.Sprintf("expected a selector at offset %d", e.Position)
	case ParseUnbalancedParen:
		return fmt.Sprintf("unbalanced parentheses at offset %d", e.Position)
	case ParseInvalidNth:
		return fmt.Sprintf("invalid nth formula %q at offset %d", e.Detail, e.Position)
	case ParseTrailingCombinator:
		return fmt.Sprintf("combinator %q has no selector after it at offset %d", e.Token, e.Position)
	default:
		return fmt.Sprintf("parse error at offset %d", e.Position)
	}
}
