package selector

import (
	"strconv"
	"strings"
)

// Lexer scans a selector string and produces the flat token sequence the
// parser consumes. It has no grammar knowledge: parentheses are emitted as
// plain delimiters and balancing them is the parser's job. Brackets are the
// one exception, since an unterminated `[` is a lexical error.
type Lexer struct {
	input    string
	position int
	tokens   []Token
	brackets []int // positions of unmatched `[`
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0, 8),
	}
}

// Tokenize materializes the whole token sequence up front, ending with an
// EOF token. Whitespace is collapsed to a single token per run and dropped
// wherever it cannot signal a descendant combinator.
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize processes the entire input and produces the list of tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		start := l.position
		switch c := l.input[l.position]; {
		case isWhitespace(c):
			l.lexWhitespace()

		case c == '"' || c == '\'':
			if err := l.lexString(); err != nil {
				return nil, err
			}

		case c == '#':
			l.position++
			name, ok := l.lexName()
			if !ok {
				l.addToken(TokenDelim, "#", start)
				continue
			}
			l.addToken(TokenHash, name, start)

		case c == '.':
			l.addToken(TokenDot, ".", start)
			l.position++

		case c == ':':
			if l.peekAt(1) == ':' {
				l.addToken(TokenDoubleColon, "::", start)
				l.position += 2
			} else {
				l.addToken(TokenColon, ":", start)
				l.position++
			}

		case c == '[':
			l.brackets = append(l.brackets, start)
			l.addToken(TokenLBracket, "[", start)
			l.position++

		case c == ']':
			if n := len(l.brackets); n > 0 {
				l.brackets = l.brackets[:n-1]
			}
			l.addToken(TokenRBracket, "]", start)
			l.position++

		case c == '(':
			l.addToken(TokenLParen, "(", start)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", start)
			l.position++

		case c == ',':
			l.addToken(TokenComma, ",", start)
			l.position++

		case c == '>' || c == '+':
			l.addToken(TokenCombinator, string(c), start)
			l.position++

		case c == '~':
			if l.peekAt(1) == '=' {
				l.addToken(TokenAttrOp, "~=", start)
				l.position += 2
			} else {
				l.addToken(TokenCombinator, "~", start)
				l.position++
			}

		case c == '*':
			if l.peekAt(1) == '=' {
				l.addToken(TokenAttrOp, "*=", start)
				l.position += 2
			} else {
				l.addToken(TokenAsterisk, "*", start)
				l.position++
			}

		case c == '|':
			if l.peekAt(1) == '=' {
				l.addToken(TokenAttrOp, "|=", start)
				l.position += 2
			} else {
				l.addToken(TokenPipe, "|", start)
				l.position++
			}

		case c == '^' || c == '$':
			if l.peekAt(1) == '=' {
				l.addToken(TokenAttrOp, string(c)+"=", start)
				l.position += 2
			} else {
				l.addToken(TokenDelim, string(c), start)
				l.position++
			}

		case c == '=':
			l.addToken(TokenAttrOp, "=", start)
			l.position++

		case c >= '0' && c <= '9':
			l.lexNumber()

		case nameStart(c) || c == '\\' || c == '-':
			if ident, ok := l.lexIdentifier(); ok {
				l.addToken(TokenIdent, ident, start)
			} else {
				l.addToken(TokenDelim, string(c), start)
				l.position = start + 1
			}

		default:
			l.addToken(TokenDelim, string(c), start)
			l.position++
		}
	}

	if len(l.brackets) > 0 {
		return nil, &LexError{Kind: LexUnterminatedBracket, Position: l.brackets[len(l.brackets)-1]}
	}

	l.addToken(TokenEOF, "", l.position)
	return normalizeWhitespace(l.tokens), nil
}

// lexWhitespace scans consecutive whitespace and produces one token.
func (l *Lexer) lexWhitespace() {
	start := l.position
	for l.position < len(l.input) && isWhitespace(l.input[l.position]) {
		l.position++
	}
	l.addToken(TokenWhitespace, l.input[start:l.position], start)
}

// lexNumber scans a run of decimal digits.
func (l *Lexer) lexNumber() {
	start := l.position
	for l.position < len(l.input) && l.input[l.position] >= '0' && l.input[l.position] <= '9' {
		l.position++
	}
	l.addToken(TokenNumber, l.input[start:l.position], start)
}

// lexIdentifier scans an identifier, allowing one leading dash and escape
// sequences. Reports false when the current position cannot start one.
func (l *Lexer) lexIdentifier() (string, bool) {
	start := l.position
	startingDash := false
	if l.input[l.position] == '-' {
		startingDash = true
		l.position++
	}
	if l.position >= len(l.input) {
		l.position = start
		return "", false
	}
	if c := l.input[l.position]; !nameStart(c) && c != '\\' && !(startingDash && c == '-') {
		l.position = start
		return "", false
	}
	name, ok := l.lexName()
	if !ok {
		l.position = start
		return "", false
	}
	if startingDash {
		name = "-" + name
	}
	return name, true
}

// lexName scans a run of name characters and escape sequences.
func (l *Lexer) lexName() (string, bool) {
	var b strings.Builder
	for l.position < len(l.input) {
		c := l.input[l.position]
		switch {
		case nameChar(c):
			start := l.position
			for l.position < len(l.input) && nameChar(l.input[l.position]) {
				l.position++
			}
			b.WriteString(l.input[start:l.position])
		case c == '\\':
			r, ok := l.lexEscape()
			if !ok {
				return b.String(), b.Len() > 0
			}
			b.WriteString(r)
		default:
			if b.Len() == 0 {
				return "", false
			}
			return b.String(), true
		}
	}
	return b.String(), b.Len() > 0
}

// lexEscape consumes a backslash escape: either a hex code point of up to
// six digits followed by optional whitespace, or a literal character.
func (l *Lexer) lexEscape() (string, bool) {
	if l.position+1 >= len(l.input) || l.input[l.position] != '\\' {
		return "", false
	}
	start := l.position + 1
	c := l.input[start]
	if c == '\n' || c == '\r' || c == '\f' {
		return "", false
	}
	if hexDigit(c) {
		i := start
		for i < len(l.input) && i < start+6 && hexDigit(l.input[i]) {
			i++
		}
		v, err := strconv.ParseUint(l.input[start:i], 16, 32)
		if err != nil {
			return "", false
		}
		// One whitespace character after a hex escape is part of the escape.
		if i < len(l.input) && isWhitespace(l.input[i]) {
			if l.input[i] == '\r' && i+1 < len(l.input) && l.input[i+1] == '\n' {
				i++
			}
			i++
		}
		l.position = i
		return string(rune(v)), true
	}
	l.position = start + 1
	return string(c), true
}

// lexString scans a single- or double-quoted string literal, honoring
// escape sequences and escaped line continuations.
func (l *Lexer) lexString() error {
	start := l.position
	quote := l.input[l.position]
	l.position++
	var b strings.Builder
	for l.position < len(l.input) {
		switch c := l.input[l.position]; {
		case c == quote:
			l.position++
			l.addToken(TokenString, b.String(), start)
			return nil
		case c == '\n' || c == '\r' || c == '\f':
			return &LexError{Kind: LexUnterminatedString, Position: start}
		case c == '\\':
			if l.position+1 < len(l.input) {
				switch next := l.input[l.position+1]; next {
				case '\n', '\f':
					l.position += 2
					continue
				case '\r':
					l.position += 2
					if l.position < len(l.input) && l.input[l.position] == '\n' {
						l.position++
					}
					continue
				}
			}
			r, ok := l.lexEscape()
			if !ok {
				return &LexError{Kind: LexUnterminatedString, Position: start}
			}
			b.WriteString(r)
		default:
			b.WriteByte(c)
			l.position++
		}
	}
	return &LexError{Kind: LexUnterminatedString, Position: start}
}

func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func (l *Lexer) peekAt(offset int) byte {
	if l.position+offset >= len(l.input) {
		return 0
	}
	return l.input[l.position+offset]
}

// normalizeWhitespace drops whitespace tokens everywhere they cannot mean a
// descendant combinator: at either end of the input, inside attribute
// brackets, and next to commas, combinators, operators and parentheses.
func normalizeWhitespace(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	depth := 0
	for i, tok := range tokens {
		switch tok.Type {
		case TokenLBracket:
			depth++
		case TokenRBracket:
			if depth > 0 {
				depth--
			}
		case TokenWhitespace:
			if depth > 0 {
				continue
			}
			if len(out) == 0 || !significantAfter(out[len(out)-1].Type) {
				continue
			}
			if i+1 < len(tokens) && !significantBefore(tokens[i+1].Type) {
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

// significantAfter reports whether whitespace following a token of the
// given type can separate two compound selectors.
func significantAfter(t TokenType) bool {
	switch t {
	case TokenComma, TokenCombinator, TokenAttrOp, TokenLParen, TokenLBracket, TokenDot, TokenPipe, TokenColon, TokenDoubleColon:
		return false
	}
	return true
}

// significantBefore reports whether whitespace preceding a token of the
// given type can separate two compound selectors.
func significantBefore(t TokenType) bool {
	switch t {
	case TokenComma, TokenCombinator, TokenAttrOp, TokenRParen, TokenRBracket, TokenEOF:
		return false
	}
	return true
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func hexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// nameStart reports whether c can begin an identifier, not counting an
// initial hyphen or an escape sequence.
func nameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c > 127
}

// nameChar reports whether c can appear within an identifier.
func nameChar(c byte) bool {
	return nameStart(c) || c == '-' || '0' <= c && c <= '9'
}
