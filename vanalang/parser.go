package vanalang

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const DefaultMaxDepth = 256

// Parser is a recursive descent parser for arithmetic expressions:
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary }
//	unary   = { "-" } atom
//	atom    = number | "(" sum ")" | ident "(" [ sum { "," sum } [ "," ] ] ")" | ident
//
// Operator runs such as "*-" are split into single-character operators when
// every character is arithmetic.
type Parser struct {
	stream   TokenStream
	source   *Source
	maxDepth int
	depth    int
	pending  []Spanned
}

type Option func(*Parser)

func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// WithSource sets the source used to render syntax errors. Tokenizer streams
// provide it implicitly.
func WithSource(src *Source) Option {
	return func(p *Parser) {
		p.source = src
	}
}

func NewParser(stream TokenStream, options ...Option) *Parser {
	p := &Parser{
		stream:   stream,
		maxDepth: DefaultMaxDepth,
	}
	if t, ok := stream.(*Tokenizer); ok {
		p.source = t.source
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Parse parses exactly one expression spanning the whole stream. It stops at
// the first syntax error; the remaining input is still scanned so every
// lexical error is reported. A non-nil error is an Errors value and the
// returned node is nil.
func Parse(stream TokenStream, options ...Option) (Node, error) {
	return NewParser(stream, options...).Parse()
}

// ParseAll parses expressions separated by ";". After a syntax error it skips
// to the next ";" and continues, so the error is an Errors value holding every
// problem found. Successfully parsed expressions are returned either way.
func ParseAll(stream TokenStream, options ...Option) ([]Node, error) {
	return NewParser(stream, options...).ParseAll()
}

func ParseSource(src *Source, options ...Option) (Node, error) {
	return Parse(NewTokenizer(src), options...)
}

func ParseAllSource(src *Source, options ...Option) ([]Node, error) {
	return ParseAll(NewTokenizer(src), options...)
}

// ParseString tokenizes and parses text as one expression.
func ParseString(name string, text string, options ...Option) (Node, error) {
	return ParseSource(NewSource(name, text), options...)
}

func (p *Parser) Parse() (Node, error) {
	node, err := p.parseSum()
	if err == nil {
		if tok := p.current(); tok.Kind != TokenEOF {
			err = p.unexpected(tok)
		}
	}
	// drain for lexical errors
	for p.current().Kind != TokenEOF {
		p.advance()
	}
	errs := append(Errors(nil), p.stream.Errors()...)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errs.sorted()
	}
	return node, nil
}

func (p *Parser) ParseAll() ([]Node, error) {
	var nodes []Node
	var syntaxErrs Errors
	for {
		tok := p.current()
		if tok.Kind == TokenEOF {
			break
		}
		if isCtrl(tok, ';') {
			p.advance()
			continue
		}

		node, err := p.parseSum()
		if err == nil {
			if tok := p.current(); tok.Kind != TokenEOF && !isCtrl(tok, ';') {
				err = p.expected("';'", tok)
			}
		}
		if err != nil {
			syntaxErrs = append(syntaxErrs, err)
			p.synchronize()
			continue
		}
		nodes = append(nodes, node)
	}

	errs := append(Errors(nil), p.stream.Errors()...)
	errs = append(errs, syntaxErrs...)
	return nodes, errs.sorted().Err()
}

// synchronize skips past the next ";".
func (p *Parser) synchronize() {
	for {
		tok := p.current()
		if tok.Kind == TokenEOF {
			return
		}
		p.advance()
		if isCtrl(tok, ';') {
			return
		}
	}
}

func (p *Parser) current() Spanned {
	if len(p.pending) > 0 {
		return p.pending[0]
	}
	tok := p.stream.Current()
	if tok.Kind == TokenOp && len(tok.Text) > 1 && isArithmeticRun(tok.Text) {
		p.stream.Consume()
		for i := range len(tok.Text) {
			p.pending = append(p.pending, Spanned{
				Token: Token{Kind: TokenOp, Text: tok.Text[i : i+1]},
				Span:  Span{Start: tok.Span.Start + i, End: tok.Span.Start + i + 1},
			})
		}
		return p.pending[0]
	}
	return tok
}

func (p *Parser) advance() {
	if len(p.pending) > 0 {
		p.pending = p.pending[1:]
		return
	}
	p.stream.Consume()
}

func (p *Parser) parseSum() (Node, *PosError) {
	lhs, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		op := p.current()
		if !isOp(op, "+") && !isOp(op, "-") {
			return lhs, nil
		}
		p.advance()
		if err := p.expectOperand(op); err != nil {
			return nil, err
		}
		rhs, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		span := lhs.Span().Join(rhs.Span())
		if op.Text == "+" {
			lhs = &Add{Lhs: lhs, Rhs: rhs, Loc: span}
		} else {
			lhs = &Sub{Lhs: lhs, Rhs: rhs, Loc: span}
		}
	}
}

func (p *Parser) parseProduct() (Node, *PosError) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.current()
		if !isOp(op, "*") && !isOp(op, "/") {
			return lhs, nil
		}
		p.advance()
		if err := p.expectOperand(op); err != nil {
			return nil, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		span := lhs.Span().Join(rhs.Span())
		if op.Text == "*" {
			lhs = &Mul{Lhs: lhs, Rhs: rhs, Loc: span}
		} else {
			lhs = &Div{Lhs: lhs, Rhs: rhs, Loc: span}
		}
	}
}

func (p *Parser) parseUnary() (Node, *PosError) {
	var minuses []Span
	for {
		tok := p.current()
		if !isOp(tok, "-") {
			break
		}
		if len(minuses) >= p.maxDepth {
			return nil, p.fail(ErrTooDeep, tok.Span)
		}
		minuses = append(minuses, tok.Span)
		p.advance()
	}
	var operand Node
	if n := len(minuses); n > 0 && isMinInt64Magnitude(p.current()) {
		// -9223372036854775808 only fits when the minus is part of the literal
		tok := p.current()
		p.advance()
		operand = &Int{
			Value: math.MinInt64,
			Loc:   minuses[n-1].Join(tok.Span),
		}
		minuses = minuses[:n-1]
	} else {
		var err *PosError
		operand, err = p.parseAtom()
		if err != nil {
			return nil, err
		}
	}
	for i := len(minuses) - 1; i >= 0; i-- {
		operand = &Neg{
			Operand: operand,
			Loc:     minuses[i].Join(operand.Span()),
		}
	}
	return operand, nil
}

func (p *Parser) parseAtom() (Node, *PosError) {
	tok := p.current()
	switch {

	case tok.Kind == TokenNum:
		p.advance()
		if strings.Contains(tok.Text, ".") {
			return &Float{Value: tok.Num, Loc: tok.Span}, nil
		}
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.fail(fmt.Errorf("%w: %s", ErrIntRange, tok.Text), tok.Span)
		}
		return &Int{Value: v, Loc: tok.Span}, nil

	case isCtrl(tok, '('):
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		defer p.leave()
		p.advance()
		expr, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if closing := p.current(); !isCtrl(closing, ')') {
			return nil, p.expected("')'", closing)
		}
		p.advance()
		return expr, nil

	case tok.Kind == TokenIdent:
		p.advance()
		if isCtrl(p.current(), '(') {
			return p.parseCall(tok)
		}
		return &Var{Name: tok.Text, Loc: tok.Span}, nil

	case tok.Kind == TokenOp:
		return nil, p.fail(fmt.Errorf("%w: unsupported operator %q", ErrUnexpectedToken, tok.Text), tok.Span)

	}

	return nil, p.fail(fmt.Errorf("%w, got %s", ErrExpectedExpression, describe(tok)), tok.Span)
}

func (p *Parser) parseCall(name Spanned) (Node, *PosError) {
	open := p.current()
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()
	p.advance()

	var args []Node
	for {
		tok := p.current()
		if isCtrl(tok, ')') {
			p.advance()
			return &Call{
				Name: name.Text,
				Args: args,
				Loc:  name.Span.Join(tok.Span),
			}, nil
		}

		arg, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok = p.current()
		if isCtrl(tok, ',') {
			p.advance()
			continue
		}
		if !isCtrl(tok, ')') {
			return nil, p.expected("',' or ')'", tok)
		}
	}
}

// expectOperand reports op as dangling when nothing that can start an
// operand follows it.
func (p *Parser) expectOperand(op Spanned) *PosError {
	tok := p.current()
	switch {
	case tok.Kind == TokenNum,
		tok.Kind == TokenIdent,
		isCtrl(tok, '('),
		isOp(tok, "-"):
		return nil
	}
	return p.fail(fmt.Errorf("%w %q, got %s", ErrDanglingOperator, op.Text, describe(tok)), op.Span)
}

func (p *Parser) enter(tok Spanned) *PosError {
	if p.depth >= p.maxDepth {
		return p.fail(ErrTooDeep, tok.Span)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) fail(err error, span Span) *PosError {
	return &PosError{
		Kind:   SyntaxError,
		Err:    err,
		Span:   span,
		Source: p.source,
	}
}

func (p *Parser) expected(what string, got Spanned) *PosError {
	return p.fail(fmt.Errorf("%w %s, got %s", ErrExpectedToken, what, describe(got)), got.Span)
}

func (p *Parser) unexpected(tok Spanned) *PosError {
	if tok.Kind == TokenOp {
		return p.fail(fmt.Errorf("%w: unsupported operator %q", ErrUnexpectedToken, tok.Text), tok.Span)
	}
	return p.fail(fmt.Errorf("%w %s", ErrUnexpectedToken, describe(tok)), tok.Span)
}

func describe(tok Spanned) string {
	if tok.Kind == TokenEOF {
		return "end of input"
	}
	return strconv.Quote(tok.String())
}

func isOp(tok Spanned, op string) bool {
	return tok.Kind == TokenOp && tok.Text == op
}

func isCtrl(tok Spanned, c byte) bool {
	return tok.Kind == TokenCtrl && tok.Ctrl == c
}

func isMinInt64Magnitude(tok Spanned) bool {
	if tok.Kind != TokenNum || strings.Contains(tok.Text, ".") {
		return false
	}
	v, err := strconv.ParseUint(tok.Text, 10, 64)
	return err == nil && v == 1<<63
}

func isArithmeticRun(text string) bool {
	for i := 0; i < len(text); i++ {
		if strings.IndexByte("+-*/", text[i]) < 0 {
			return false
		}
	}
	return true
}
