package selector

import "fmt"

// TokenType defines different types of tokens that can be produced by the lexer.
type TokenType int

const (
	TokenIdent      TokenType = iota // identifier, e.g. `div`, `-moz-box`
	TokenNumber                      // integer literal, e.g. `2` in :nth-child(2n)
	TokenString                      // quoted string, `"..."` or `'...'`
	TokenHash                        // `#name`; Value holds the name without `#`
	TokenDot                         // `.`
	TokenColon                       // `:`
	TokenDoubleColon                 // `::`
	TokenLBracket                    // `[`
	TokenRBracket                    // `]`
	TokenLParen                      // `(`
	TokenRParen                      // `)`
	TokenComma                       // `,`
	TokenAsterisk                    // `*`
	TokenPipe                        // `|` (attribute namespace separator)
	TokenCombinator                  // `>`, `+` or `~`
	TokenAttrOp                      // `=`, `~=`, `|=`, `^=`, `$=`, `*=`
	TokenWhitespace                  // run of whitespace between compound selectors
	TokenDelim                       // any character the lexer has no use for
	TokenEOF                         // end of input
)

var tokenNames = map[TokenType]string{
	TokenIdent:       "identifier",
	TokenNumber:      "number",
	TokenString:      "string",
	TokenHash:        "hash",
	TokenDot:         ".",
	TokenColon:       ":",
	TokenDoubleColon: "::",
	TokenLBracket:    "[",
	TokenRBracket:    "]",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenComma:       ",",
	TokenAsterisk:    "*",
	TokenPipe:        "|",
	TokenCombinator:  "combinator",
	TokenAttrOp:      "attribute operator",
	TokenWhitespace:  "whitespace",
	TokenDelim:       "delimiter",
	TokenEOF:         "end of input",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a single lexical token with type, value, and position.
// Tokens are immutable; Value borrows from the input string.
type Token struct {
	Type     TokenType
	Value    string // the literal text for this token (strings are unquoted)
	Position int    // starting byte offset in the original input
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenWhitespace:
		return "WS"
	default:
		return fmt.Sprintf("%s(%q)", t.Type, t.Value)
	}
}
