package vanalang

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	operatorChars = "+*-/!="
	controlChars  = "()[]{}:;,"
	commentChar   = '@'
)

// Tokenizer scans a Source lazily. Unrecognized input is skipped one
// character at a time and recorded in Errors; scanning never stops early.
type Tokenizer struct {
	source  *Source
	src     string
	offset  int
	current *Spanned
	errs    Errors
}

var _ TokenStream = new(Tokenizer)

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		src:    source.Content,
	}
}

// Tokenize scans the whole source.
func Tokenize(source *Source) ([]Spanned, Errors) {
	t := NewTokenizer(source)
	var tokens []Spanned
	for tok := range t.All() {
		tokens = append(tokens, tok)
	}
	return tokens, t.Errors()
}

func (t *Tokenizer) Current() Spanned {
	if t.current == nil {
		tok := t.parseNext()
		t.current = &tok
	}
	return *t.current
}

func (t *Tokenizer) Consume() {
	if t.current != nil && t.current.Kind == TokenEOF {
		return
	}
	t.Current()
	t.current = nil
}

func (t *Tokenizer) Errors() Errors {
	return t.errs
}

// All yields the remaining tokens, excluding EOF.
func (t *Tokenizer) All() iter.Seq[Spanned] {
	return func(yield func(Spanned) bool) {
		for {
			tok := t.Current()
			if tok.Kind == TokenEOF {
				return
			}
			t.Consume()
			if !yield(tok) {
				return
			}
		}
	}
}

func (t *Tokenizer) parseNext() Spanned {
	for {
		t.skipTrivia()
		start := t.offset
		if start >= len(t.src) {
			return Spanned{
				Token: Token{Kind: TokenEOF},
				Span:  Span{Start: start, End: start},
			}
		}

		c := t.src[start]
		switch {
		case isDigit(c):
			return t.parseNumber()
		case c == '"':
			if tok, ok := t.parseString(); ok {
				return tok
			}
			continue
		case strings.IndexByte(operatorChars, c) >= 0:
			return t.parseOperator()
		case strings.IndexByte(controlChars, c) >= 0:
			t.offset++
			return Spanned{
				Token: Token{Kind: TokenCtrl, Text: t.src[start:t.offset], Ctrl: c},
				Span:  Span{Start: start, End: t.offset},
			}
		case isIdentStart(c):
			return t.parseIdentifier()
		}

		_, size := utf8.DecodeRuneInString(t.src[start:])
		t.offset += size
		t.fail(
			fmt.Errorf("%w %q", ErrUnexpectedChar, t.src[start:t.offset]),
			Span{Start: start, End: t.offset},
		)
	}
}

func (t *Tokenizer) fail(err error, span Span) {
	t.errs = append(t.errs, &PosError{
		Kind:   LexicalError,
		Err:    err,
		Span:   span,
		Source: t.source,
	})
}

// skipTrivia skips whitespace and comments.
func (t *Tokenizer) skipTrivia() {
	for t.offset < len(t.src) {
		c := t.src[t.offset]
		if c == commentChar {
			if i := strings.IndexByte(t.src[t.offset:], '\n'); i >= 0 {
				t.offset += i
			} else {
				t.offset = len(t.src)
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(t.src[t.offset:])
		if !unicode.IsSpace(r) {
			return
		}
		t.offset += size
	}
}

func (t *Tokenizer) parseNumber() Spanned {
	start := t.offset
	t.skipDigits()
	if t.offset+1 < len(t.src) && t.src[t.offset] == '.' && isDigit(t.src[t.offset+1]) {
		t.offset++
		t.skipDigits()
	}
	text := t.src[start:t.offset]
	// digits with an optional fraction always parse; overflow saturates to Inf
	num, _ := strconv.ParseFloat(text, 64)
	return Spanned{
		Token: Token{Kind: TokenNum, Text: text, Num: num},
		Span:  Span{Start: start, End: t.offset},
	}
}

func (t *Tokenizer) skipDigits() {
	for t.offset < len(t.src) && isDigit(t.src[t.offset]) {
		t.offset++
	}
}

func (t *Tokenizer) parseString() (Spanned, bool) {
	start := t.offset
	end := strings.IndexByte(t.src[start+1:], '"')
	if end < 0 {
		// skip only the quote; the rest is scanned as ordinary input
		t.offset++
		t.fail(ErrUnterminatedString, Span{Start: start, End: t.offset})
		return Spanned{}, false
	}
	t.offset = start + 1 + end + 1
	return Spanned{
		Token: Token{Kind: TokenStr, Text: t.src[start+1 : t.offset-1]},
		Span:  Span{Start: start, End: t.offset},
	}, true
}

func (t *Tokenizer) parseOperator() Spanned {
	start := t.offset
	for t.offset < len(t.src) && strings.IndexByte(operatorChars, t.src[t.offset]) >= 0 {
		t.offset++
	}
	return Spanned{
		Token: Token{Kind: TokenOp, Text: t.src[start:t.offset]},
		Span:  Span{Start: start, End: t.offset},
	}
}

func (t *Tokenizer) parseIdentifier() Spanned {
	start := t.offset
	for t.offset < len(t.src) && isIdentContinue(t.src[t.offset]) {
		t.offset++
	}
	return Spanned{
		Token: LookupIdent(t.src[start:t.offset]),
		Span:  Span{Start: start, End: t.offset},
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
