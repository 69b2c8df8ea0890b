package unitexpr

import (
	"github.com/shopspring/decimal"

	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// expression is a reducible sub-expression together with the half-open token
// range it occupies in the slicer's buffer.
type expression struct {
	node  exprNode
	start int
	end   int
}

// Parser reduces a tokenized expression by repeatedly locating the next
// reducible sub-expression, evaluating it, and splicing the result back into
// the token buffer. Each successful reduction is recorded as a step.
//
// A Parser borrows its factory for the duration of one parse and is not safe
// for concurrent use.
type Parser struct {
	factory   *Factory
	tokenizer *Tokenizer
	opts      Options
	steps     [][]Token
}

// NewParser builds a parser over input.
func (f *Factory) NewParser(input string, opts ...Option) *Parser {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}
	return &Parser{
		factory:   f,
		tokenizer: NewTokenizer(input, f),
		opts:      options,
	}
}

// ParsedTokens exposes the tokenizer's positioned output.
func (p *Parser) ParsedTokens() []RangedToken {
	return p.tokenizer.Tokenize()
}

// Steps returns one snapshot of the token buffer per successful reduction.
func (p *Parser) Steps() [][]Token {
	return p.steps
}

// Parse runs the reduction loop. It returns a single value when the buffer
// reduces to one result, the residual tokens when a full pass finds nothing
// to reduce, or an error when a reduction was attempted and failed.
func (p *Parser) Parse() (ParseValue, error) {
	compiled := p.tokenizer.Tokenize()
	p.debugf("parsed tokens: %s", Render(p.tokenizer.Tokens()))

	tokens := make([]Token, 0, len(compiled))
	for _, rt := range compiled {
		if rt.Token.Kind != KindWhitespace {
			tokens = append(tokens, rt.Token)
		}
	}

	// A top-level "name = number" defines a constant on the factory and
	// reduces to the number.
	if value, ok := p.constantDefinition(tokens); ok {
		return singleValue(value), nil
	}

	slicer := NewSlicer(tokens)

	changed, err := p.parseNeighbors(slicer)
	if err != nil {
		return ParseValue{}, err
	}
	if changed {
		p.record(slicer)
	}

	for {
		slicer.ResetPos()
		slicer.Forward()

		expr, err := p.parseTokens(slicer)
		if err != nil {
			return ParseValue{}, err
		}
		if expr == nil {
			p.debugf("unable to continue parsing: %s", Render(slicer.Tokens()))
			return multiValue(slicer.Tokens()), nil
		}

		if !slicer.IsFinished() {
			value, err := expr.node.eval()
			if err != nil {
				return ParseValue{}, err
			}
			slicer.Replace(expr.start, expr.end, value.Tokens())
			if slicer.Len() > 0 {
				p.record(slicer)
			}
			continue
		}

		value, err := expr.node.eval()
		if err != nil {
			return ParseValue{}, err
		}
		return singleValue(value), nil
	}
}

// constantDefinition recognises the exact three-token shape Literal "=" Number.
func (p *Parser) constantDefinition(tokens []Token) (Value, bool) {
	if len(tokens) != 3 {
		return nil, false
	}
	if !tokens[0].IsLiteral() || !tokens[1].IsOp(OpEqual) || !tokens[2].IsNumber() {
		return nil, false
	}

	p.factory.AddConstant(tokens[0].Text, tokens[2].Num)
	return QuantityValue{units.New(tokens[2].Num)}, true
}

// parseNeighbors folds runs of adjacent quantities whose units share a
// canonical base: "5 min 30 s" becomes "5.5 min". The largest unit in the
// run wins through the addition rule.
func (p *Parser) parseNeighbors(s *Slicer) (bool, error) {
	updated := false

	for {
		tok, ok := s.Peek()
		if !ok {
			break
		}

		prev, hasPrev := s.PeekPrevious()
		if !tok.IsLiteral() || !hasPrev || !prev.IsNumber() {
			s.NextPos()
			continue
		}

		s.PrevPos()
		start := s.Pos()

		var nodes []exprNode
		var canonical *units.Base
		for {
			save := s.Pos()
			expr, err := p.parseNumberExpression(s)
			if err != nil {
				return false, err
			}
			if expr == nil {
				break
			}

			value, _ := expr.node.eval()
			u := value.BaseUnit()
			if u == nil || (canonical != nil && !u.Num.Canonical.Equal(canonical)) {
				s.SetPos(save)
				break
			}
			canonical = u.Num.Canonical
			nodes = append(nodes, expr.node)
		}

		if len(nodes) < 2 {
			continue
		}

		folded := exprNode(literalNode{QuantityValue{units.New(decimal.Zero)}})
		for _, node := range nodes {
			folded = binaryNode{op: OpPlus, left: folded, right: node}
		}
		value, err := folded.eval()
		if err != nil {
			return false, err
		}

		s.Replace(start, s.Pos(), value.Tokens())
		updated = true

		// Positions are invalidated; rescan for further runs.
		s.ResetPos()
	}

	return updated, nil
}

// parseTokens locates the next reducible sub-expression: carets first, then
// groupings and function calls, then the binary operators in precedence
// order, leftmost first within a class. It returns nil when nothing reduces.
func (p *Parser) parseTokens(s *Slicer) (*expression, error) {
	p.debugf(" - parse: %s", Render(s.Tokens()))

	// The caret is right-associative: the rightmost one folds first.
	if carets := s.FindIndexes(OperatorToken(OpCaret)); len(carets) > 0 {
		return p.parseExponents(carets[len(carets)-1], s)
	}

	groupings := s.FindMultipleIndexes([]Token{
		{Kind: KindStartGrouping},
		{Kind: KindEndGrouping},
	})
	for _, pos := range groupings {
		expr, err := p.parseParentheses(pos, s)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			return expr, nil
		}
	}

	var candidates []int
	candidates = append(candidates, s.FindMultipleIndexes([]Token{
		OperatorToken(OpMultiply),
		OperatorToken(OpDivide),
	})...)
	candidates = append(candidates, s.FindMultipleIndexes([]Token{
		OperatorToken(OpPlus),
		OperatorToken(OpMinus),
	})...)
	candidates = append(candidates, s.FindIndexes(OperatorToken(OpConvert))...)
	candidates = append(candidates, s.FindMultipleIndexes([]Token{
		OperatorToken(OpGreaterThan),
		OperatorToken(OpGreaterThanOrEqual),
		OperatorToken(OpLessThan),
		OperatorToken(OpLessThanOrEqual),
		OperatorToken(OpDoubleEqual),
		OperatorToken(OpNotEqual),
	})...)

	for _, pos := range candidates {
		expr, err := p.parseOperation(pos, s)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			return expr, nil
		}
	}

	return p.parseFinished(s)
}

// parseExponents folds base ^ power. A parenthesised base defers to the
// group's own reduction first.
func (p *Parser) parseExponents(pos int, s *Slicer) (*expression, error) {
	p.debugf("parse exponents")

	s.Backward()
	s.SetPos(pos)
	s.NextPos()

	if tok, ok := s.Peek(); ok && tok.Kind == KindEndGrouping {
		return p.parseParentheses(s.Pos(), s)
	}

	base, err := p.parseNumberExpression(s)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, errInputEmpty()
	}

	s.Forward()
	s.SetPos(pos + 1)

	power, err := p.parseNumberExpression(s)
	if err != nil {
		return nil, err
	}
	if power == nil {
		return nil, errInputEmpty()
	}
	end := s.Pos()
	s.ResetPos()

	return &expression{
		node:  binaryNode{op: OpCaret, left: base.node, right: power.node},
		start: base.start,
		end:   end,
	}, nil
}

// parseParentheses reduces a grouping: a function call when a literal
// immediately precedes the opening bracket, the inner sub-expression
// otherwise. When the inner range reduces in its entirety, the surrounding
// brackets are consumed as well.
func (p *Parser) parseParentheses(startPos int, s *Slicer) (*expression, error) {
	p.debugf("parse parentheses: %d (reversed %v)", startPos, s.IsReversed())

	s.SetPos(startPos)

	// Entered at a closing bracket while walking backward: locate the
	// matching opening bracket and continue forward from there.
	if s.IsReversed() {
		if _, ok := s.Next(); !ok {
			return nil, errInputEmpty()
		}
		nest := 0
		for {
			tok, ok := s.Next()
			if !ok {
				return nil, errInputEmpty()
			}
			if tok.Kind == KindEndGrouping {
				nest++
			} else if tok.Kind == KindStartGrouping {
				if nest != 0 {
					nest--
				} else {
					break
				}
			}
		}

		actualStart := s.Pos() + 1
		if startPos < actualStart {
			actualStart = startPos
		}

		s.Forward()
		s.SetPos(actualStart + 1)
		startPos = actualStart
	}

	if startPos != 0 {
		if prev, ok := s.PeekPrevious(); ok && prev.IsLiteral() {
			return p.parseFunctionCall(prev.Text, startPos, s)
		}
	}

	if tok, ok := s.Peek(); ok && tok.Kind == KindStartGrouping {
		s.NextPos()
	}

	for {
		tok, ok := s.Next()
		if !ok {
			return nil, errInputEmpty()
		}

		// An inner grouping reduces first.
		if tok.Kind == KindStartGrouping {
			return p.parseParentheses(s.Pos()-1, s)
		}

		if tok.Kind != KindEndGrouping {
			continue
		}

		endPos := s.Pos()
		inner := s.CloneFrom(startPos+1, endPos-1)

		parsed, err := p.parseTokens(inner)
		s.ResetPos()
		if err != nil {
			return nil, err
		}
		if parsed == nil {
			return nil, nil
		}

		innerStart := startPos + parsed.start + 1
		innerEnd := startPos + parsed.end + 1
		if innerStart == startPos+1 && innerEnd == endPos-1 {
			// The whole inner range reduced: drop the brackets too.
			innerStart--
			innerEnd++
		}
		parsed.start, parsed.end = innerStart, innerEnd
		return parsed, nil
	}
}

// parseFunctionCall treats the grouping after a function literal as the
// argument list: number expressions separated by commas.
func (p *Parser) parseFunctionCall(name string, startPos int, s *Slicer) (*expression, error) {
	p.debugf(" - function literal: %s", name)

	def, ok := p.factory.Funcs().Find(name)
	if !ok {
		return nil, errInvalidFunction(name)
	}

	inner := s.CloneFrom(startPos+1, s.Len()-1)

	var args []exprNode
	sawComma := false
	for {
		expr, err := p.parseNumberExpression(inner)
		if err != nil {
			return nil, err
		}
		if expr == nil {
			if sawComma {
				return nil, &Error{Kind: KindExpectedArgument, Message: "trailing comma"}
			}
			break
		}
		args = append(args, expr.node)

		if !inner.ConsumeIfNext(Token{Kind: KindComma}) {
			break
		}
		sawComma = true
	}

	end := s.Pos() + inner.Pos() + 2
	return &expression{
		node:  funcNode{def: def, args: args},
		start: startPos - 1,
		end:   end,
	}, nil
}

// parseOperation folds a binary operator with the number expressions on each
// side. Operands whose units do not share a canonical base skip the
// candidate, except for conversion, which reports the incompatibility.
func (p *Parser) parseOperation(pos int, s *Slicer) (*expression, error) {
	p.debugf("parse operation")

	opTok, ok := s.Get(pos)
	if !ok || !opTok.IsOperator() {
		return nil, nil
	}
	op := opTok.Op

	// A leading operator has no left operand; a lone "-1" stays unreduced.
	if pos == 0 {
		return nil, nil
	}

	s.Backward()
	s.SetPos(pos - 1)
	prev, err := p.parseNumberExpression(s)
	if err != nil {
		return nil, err
	}

	s.Forward()
	s.SetPos(pos + 1)
	next, err := p.parseNumberExpression(s)
	if err != nil {
		return nil, err
	}
	end := s.Pos()
	s.ResetPos()

	if prev == nil || next == nil {
		return nil, errInputEmpty()
	}

	if op != OpConvert && !canOperate(prev.node, next.node) {
		return nil, nil
	}

	return &expression{
		node:  binaryNode{op: op, left: prev.node, right: next.node},
		start: prev.start,
		end:   end,
	}, nil
}

// parseNumberExpression consumes one operand at the cursor: a number with an
// optional unit literal, or a lone unit literal. In reversed mode the order
// is flipped. A trailing "%" followed by an operator or the end of the
// buffer is absorbed as the percent unit.
func (p *Parser) parseNumberExpression(s *Slicer) (*expression, error) {
	start := s.Pos()

	if s.IsReversed() {
		unit := p.parseUnitExpression(s)

		if s.IsNextFunc(Token.IsNumber) {
			tok, _ := s.Next()
			return &expression{
				node:  literalNode{QuantityValue{units.NewWithUnit(tok.Num, unit)}},
				start: s.Pos() + 1,
				end:   start + 1,
			}, nil
		}

		if unit != nil {
			return &expression{
				node:  literalNode{UnitValue{unit}},
				start: s.Pos() + 1,
				end:   start + 1,
			}, nil
		}
		return nil, nil
	}

	if s.IsNextFunc(Token.IsNumber) {
		tok, _ := s.Next()
		unit := p.parseUnitExpression(s)

		if unit == nil && s.IsNextValue(OperatorToken(OpPercent)) {
			after, ok := s.Get(s.Pos() + 1)
			if !ok || after.IsOperator() {
				s.NextPos()
				unit = p.factory.Units().Find("%")
			}
		}

		return &expression{
			node:  literalNode{QuantityValue{units.NewWithUnit(tok.Num, unit)}},
			start: start,
			end:   s.Pos(),
		}, nil
	}

	if unit := p.parseUnitExpression(s); unit != nil {
		return &expression{
			node:  literalNode{UnitValue{unit}},
			start: start,
			end:   s.Pos(),
		}, nil
	}
	return nil, nil
}

// parseUnitExpression consumes a literal at the cursor and resolves it into
// a compound unit; "GB/s" splits into numerator and denominator. Unknown
// spellings become custom units.
func (p *Parser) parseUnitExpression(s *Slicer) *units.Unit {
	if !s.IsNextFunc(Token.IsLiteral) {
		return nil
	}
	tok, _ := s.Next()
	return p.factory.Units().Find(tok.Text)
}

// parseFinished accepts a buffer that is down to a single number expression.
func (p *Parser) parseFinished(s *Slicer) (*expression, error) {
	p.debugf("parse finished")

	s.Forward()
	s.ResetPos()

	expr, err := p.parseNumberExpression(s)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, nil
	}

	if s.IsFinished() || s.Len() == 1 {
		s.Clear()
		return expr, nil
	}

	s.ResetPos()
	return nil, nil
}

func (p *Parser) record(s *Slicer) {
	snapshot := make([]Token, s.Len())
	copy(snapshot, s.Tokens())
	p.steps = append(p.steps, snapshot)
}

// NumberExpression runs the operand recogniser once at the slicer's cursor,
// returning the recognised value. This is the entry point the text extractor
// uses; it never performs a reduction.
func (p *Parser) NumberExpression(s *Slicer) (Value, bool, error) {
	expr, err := p.parseNumberExpression(s)
	if err != nil || expr == nil {
		return nil, false, err
	}
	value, err := expr.node.eval()
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}
