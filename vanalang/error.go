package vanalang

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnterminatedString = errors.New("unterminated string literal")

	ErrExpectedToken      = errors.New("expected token")
	ErrDanglingOperator   = errors.New("dangling operator")
	ErrExpectedExpression = errors.New("expected expression")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrTooDeep            = errors.New("expression nested too deeply")
	// ErrIntRange reports an integer literal past int64. A minus directly
	// before the literal counts, so -9223372036854775808 is accepted while
	// -(9223372036854775808) is not.
	ErrIntRange = errors.New("integer literal out of range")
)

type ErrorKind uint8

const (
	LexicalError ErrorKind = iota + 1
	SyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	}
	return "error"
}

type PosError struct {
	Kind   ErrorKind
	Err    error
	Span   Span
	Source *Source
}

func (p *PosError) Pos() Pos {
	if p.Source == nil {
		return Pos{Offset: p.Span.Start}
	}
	return p.Source.Pos(p.Span.Start)
}

func (p *PosError) Error() string {
	if p.Source == nil {
		return fmt.Sprintf("%s at %s", p.Err.Error(), p.Span)
	}
	return fmt.Sprintf("%s at %s\n%s", p.Err.Error(), p.Pos(), p.Snippet())
}

// Snippet returns the source line containing the span start followed by a
// caret line underlining the span.
func (p *PosError) Snippet() string {
	if p.Source == nil {
		return ""
	}
	pos := p.Pos()
	lines := p.Source.Lines
	idx := pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}

	var sb strings.Builder
	line := lines[idx]
	sb.WriteString(line)
	sb.WriteString("\n")

	// underline stops at the end of the first line
	spanned := p.Source.Slice(p.Span)
	if i := strings.IndexByte(spanned, '\n'); i >= 0 {
		spanned = spanned[:i]
	}
	width := max(utf8.RuneCountInString(spanned), 1)

	col := pos.Column - 1
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
		i++
	}
	sb.WriteString(strings.Repeat("^", width))
	sb.WriteString("\n")

	return sb.String()
}

func (p *PosError) Unwrap() error {
	return p.Err
}

// WithSpan attaches a span to err. Errors that already carry one are
// returned unchanged.
func WithSpan(err error, kind ErrorKind, span Span, src *Source) error {
	if err == nil {
		return nil
	}
	var posErr *PosError
	if errors.As(err, &posErr) {
		return err
	}
	return &PosError{
		Kind:   kind,
		Err:    err,
		Span:   span,
		Source: src,
	}
}

// Errors is an ordered list of positioned errors.
type Errors []*PosError

func (e Errors) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e Errors) Unwrap() []error {
	ret := make([]error, len(e))
	for i, err := range e {
		ret[i] = err
	}
	return ret
}

// Err returns nil for an empty list, so a nil Errors is never boxed into a
// non-nil error.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) sorted() Errors {
	slices.SortStableFunc(e, func(a, b *PosError) int {
		return cmp.Compare(a.Span.Start, b.Span.Start)
	})
	return e
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
