package selector

import "strings"

// Parser consumes tokens produced by the lexer and builds a selector list.
// It is a straightforward recursive-descent parser: functional
// pseudo-classes re-enter parseSelectorList for their nested lists.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser over a token slice.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes and parses a complete selector string.
func Parse(input string) (*SelectorList, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens)
	list, err := p.parseSelectorList(false)
	if err != nil {
		return nil, err
	}
	if len(list.Selectors) == 0 {
		return nil, &ParseError{Kind: ParseEmptyCompound, Position: 0}
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, &ParseError{Kind: ParseUnexpectedToken, Position: tok.Position, Token: tok.Value}
	}
	return list, nil
}

// parseSelectorList parses comma-separated complex selectors until EOF or
// an unmatched close paren. Relative mode (inside :has) permits a leading
// combinator on each member. An immediately closing paren yields an empty
// list; only the top-level caller rejects that.
func (p *Parser) parseSelectorList(relative bool) (*SelectorList, error) {
	list := &SelectorList{}
	if tok := p.peek(); tok.Type == TokenEOF || tok.Type == TokenRParen {
		return list, nil
	}
	for {
		complex, err := p.parseComplexSelector(relative)
		if err != nil {
			return nil, err
		}
		list.Selectors = append(list.Selectors, *complex)

		tok := p.peek()
		if tok.Type != TokenComma {
			return list, nil
		}
		p.advance()
	}
}

// parseComplexSelector parses a chain of compound selectors joined by
// combinators, stopping at a comma, EOF, or close paren.
func (p *Parser) parseComplexSelector(relative bool) (*ComplexSelector, error) {
	complex := &ComplexSelector{}
	comb := CombinatorNone

	if tok := p.peek(); tok.Type == TokenCombinator {
		if !relative {
			return nil, &ParseError{Kind: ParseUnexpectedToken, Position: tok.Position, Token: tok.Value}
		}
		comb = combinatorFor(tok.Value)
		p.advance()
	}

	for {
		compound, err := p.parseCompoundSelector()
		if err != nil {
			return nil, err
		}
		complex.Units = append(complex.Units, SelectorUnit{Combinator: comb, Compound: *compound})

		switch tok := p.peek(); tok.Type {
		case TokenWhitespace:
			p.advance()
			// Whitespace that survived normalization separates two
			// compounds, unless an explicit combinator follows.
			if next := p.peek(); next.Type == TokenCombinator {
				comb = combinatorFor(next.Value)
				p.advance()
				if err := p.requireCompoundStart(next); err != nil {
					return nil, err
				}
			} else {
				comb = CombinatorDescendant
			}
		case TokenCombinator:
			comb = combinatorFor(tok.Value)
			p.advance()
			if err := p.requireCompoundStart(tok); err != nil {
				return nil, err
			}
		default:
			return complex, nil
		}
	}
}

// requireCompoundStart rejects a combinator with nothing after it.
func (p *Parser) requireCompoundStart(comb Token) error {
	if !startsCompound(p.peek().Type) {
		return &ParseError{Kind: ParseTrailingCombinator, Position: comb.Position, Token: comb.Value}
	}
	return nil
}

func startsCompound(t TokenType) bool {
	switch t {
	case TokenIdent, TokenAsterisk, TokenHash, TokenDot, TokenLBracket, TokenColon, TokenDoubleColon:
		return true
	}
	return false
}

func combinatorFor(value string) Combinator {
	switch value {
	case ">":
		return CombinatorChild
	case "+":
		return CombinatorAdjacent
	case "~":
		return CombinatorGeneral
	default:
		return CombinatorDescendant
	}
}

// parseCompoundSelector greedily consumes simple selectors until a token
// that cannot start one. At most one type or universal selector is
// allowed, and only in leading position.
func (p *Parser) parseCompoundSelector() (*CompoundSelector, error) {
	compound := &CompoundSelector{}
	for {
		tok := p.peek()
		switch tok.Type {
		case TokenIdent:
			if len(compound.Selectors) > 0 {
				return nil, &ParseError{Kind: ParseUnexpectedToken, Position: tok.Position, Token: tok.Value}
			}
			p.advance()
			compound.Selectors = append(compound.Selectors, SimpleSelector{Kind: SimpleType, Name: tok.Value})

		case TokenAsterisk:
			if len(compound.Selectors) > 0 {
				return nil, &ParseError{Kind: ParseUnexpectedToken, Position: tok.Position, Token: tok.Value}
			}
			p.advance()
			compound.Selectors = append(compound.Selectors, SimpleSelector{Kind: SimpleUniversal})

		case TokenHash:
			p.advance()
			compound.Selectors = append(compound.Selectors, SimpleSelector{Kind: SimpleID, Name: tok.Value})

		case TokenDot:
			p.advance()
			name := p.peek()
			if name.Type != TokenIdent {
				return nil, &ParseError{Kind: ParseUnexpectedToken, Position: name.Position, Token: name.Value}
			}
			p.advance()
			compound.Selectors = append(compound.Selectors, SimpleSelector{Kind: SimpleClass, Name: name.Value})

		case TokenLBracket:
			sel, err := p.parseAttributeSelector()
			if err != nil {
				return nil, err
			}
			compound.Selectors = append(compound.Selectors, *sel)

		case TokenColon:
			sel, err := p.parsePseudoClass()
			if err != nil {
				return nil, err
			}
			compound.Selectors = append(compound.Selectors, *sel)

		case TokenDoubleColon:
			sel, err := p.parsePseudoElement()
			if err != nil {
				return nil, err
			}
			compound.Selectors = append(compound.Selectors, *sel)

		default:
			if len(compound.Selectors) == 0 {
				return nil, &ParseError{Kind: ParseEmptyCompound, Position: tok.Position}
			}
			return compound, nil
		}
	}
}

// parseAttributeSelector parses `[ns|name op value flag]`. The lexer has
// already guaranteed the closing bracket exists.
func (p *Parser) parseAttributeSelector() (*SimpleSelector, error) {
	p.advance() // consume `[`

	sel := &SimpleSelector{Kind: SimpleAttribute}

	tok := p.peek()
	switch tok.Type {
	case TokenIdent:
		sel.Name = tok.Value
	case TokenAsterisk:
		sel.Namespace = "*"
	default:
		return nil, &ParseError{Kind: ParseUnexpectedToken, Position: tok.Position, Token: tok.Value}
	}
	p.advance()

	if p.peek().Type == TokenPipe {
		p.advance()
		name := p.peek()
		if name.Type != TokenIdent {
			return nil, &ParseError{Kind: ParseUnexpectedToken, Position: name.Position, Token: name.Value}
		}
		p.advance()
		if sel.Namespace == "" {
			sel.Namespace = sel.Name
		}
		sel.Name = name.Value
	} else if sel.Namespace == "*" {
		// `[*]` on its own is not a valid attribute selector.
		return nil, &ParseError{Kind: ParseUnexpectedToken, Position: tok.Position, Token: tok.Value}
	}

	if op := p.peek(); op.Type == TokenAttrOp {
		p.advance()
		sel.Op = attrOpFor(op.Value)
		val := p.peek()
		switch val.Type {
		case TokenIdent, TokenString, TokenNumber:
			sel.Value = val.Value
		default:
			return nil, &ParseError{Kind: ParseUnexpectedToken, Position: val.Position, Token: val.Value}
		}
		p.advance()

		if flag := p.peek(); flag.Type == TokenIdent && strings.EqualFold(flag.Value, "i") {
			p.advance()
			sel.CaseInsensitive = true
			sel.Value = strings.ToLower(sel.Value)
		}
	}

	end := p.peek()
	if end.Type != TokenRBracket {
		return nil, &ParseError{Kind: ParseUnexpectedToken, Position: end.Position, Token: end.Value}
	}
	p.advance()
	return sel, nil
}

func attrOpFor(value string) AttrOp {
	switch value {
	case "=":
		return AttrEquals
	case "~=":
		return AttrIncludes
	case "|=":
		return AttrDashMatch
	case "^=":
		return AttrPrefix
	case "$=":
		return AttrSuffix
	case "*=":
		return AttrSubstring
	default:
		return AttrPresent
	}
}

// parsePseudoClass parses `:name` and `:name(...)`. Legacy single-colon
// pseudo-element names are accepted and reclassified; unknown names are
// kept with PseudoUnknown rather than rejected.
func (p *Parser) parsePseudoClass() (*SimpleSelector, error) {
	p.advance() // consume `:`

	name := p.peek()
	if name.Type != TokenIdent {
		return nil, &ParseError{Kind: ParseUnexpectedToken, Position: name.Position, Token: name.Value}
	}
	p.advance()

	lower := strings.ToLower(name.Value)
	if legacyPseudoElements[lower] && p.peek().Type != TokenLParen {
		return &SimpleSelector{Kind: SimplePseudoElement, Name: lower}, nil
	}

	sel := &SimpleSelector{Kind: SimplePseudoClass, Name: lower, Pseudo: LookupPseudo(lower)}

	if p.peek().Type != TokenLParen {
		return sel, nil
	}
	open := p.peek()
	p.advance()

	switch {
	case sel.Pseudo.takesSelectorList():
		list, err := p.parseSelectorList(sel.Pseudo == PseudoHas)
		if err != nil {
			return nil, err
		}
		sel.List = list
	case sel.Pseudo.takesNth():
		nth, err := p.parseNthArgument(open)
		if err != nil {
			return nil, err
		}
		sel.Nth = nth
	default:
		// Unknown functional pseudo-class: skip a balanced argument and
		// keep the lenient always-match behavior.
		if err := p.skipBalanced(open); err != nil {
			return nil, err
		}
		return sel, nil
	}

	end := p.peek()
	if end.Type != TokenRParen {
		return nil, &ParseError{Kind: ParseUnbalancedParen, Position: open.Position, Token: end.Value}
	}
	p.advance()
	return sel, nil
}

// parsePseudoElement parses `::name` and `::name(...)`. The argument of
// forms like ::part() and ::slotted() is skipped: pseudo-elements attach
// to the compound but never participate in matching.
func (p *Parser) parsePseudoElement() (*SimpleSelector, error) {
	p.advance() // consume `::`

	name := p.peek()
	if name.Type != TokenIdent {
		return nil, &ParseError{Kind: ParseUnexpectedToken, Position: name.Position, Token: name.Value}
	}
	p.advance()

	sel := &SimpleSelector{Kind: SimplePseudoElement, Name: strings.ToLower(name.Value)}
	if open := p.peek(); open.Type == TokenLParen {
		p.advance()
		if err := p.skipBalanced(open); err != nil {
			return nil, err
		}
	}
	return sel, nil
}

// parseNthArgument collects raw token text up to the closing paren and
// runs the An+B micro-grammar over it.
func (p *Parser) parseNthArgument(open Token) (*NthFormula, error) {
	var b strings.Builder
	for {
		tok := p.peek()
		switch tok.Type {
		case TokenRParen:
			f, ok := parseNthFormula(b.String())
			if !ok {
				return nil, &ParseError{Kind: ParseInvalidNth, Position: open.Position, Detail: b.String()}
			}
			return &f, nil
		case TokenEOF:
			return nil, &ParseError{Kind: ParseUnbalancedParen, Position: open.Position}
		case TokenLParen:
			return nil, &ParseError{Kind: ParseInvalidNth, Position: open.Position, Detail: b.String()}
		default:
			b.WriteString(tok.Value)
			p.advance()
		}
	}
}

// skipBalanced consumes tokens through the close paren matching open,
// honoring nested parentheses.
func (p *Parser) skipBalanced(open Token) error {
	depth := 1
	for depth > 0 {
		tok := p.peek()
		switch tok.Type {
		case TokenEOF:
			return &ParseError{Kind: ParseUnbalancedParen, Position: open.Position}
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		}
		p.advance()
	}
	return nil
}

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: -1}
	}
	return p.tokens[p.current]
}

func (p *Parser) advance() {
	if p.current < len(p.tokens) {
		p.current++
	}
}
