package vanalang

type TokenStream interface {
	// Current returns the token under the cursor, or an EOF token at the end.
	Current() Spanned
	Consume()
	// Errors returns the lexical errors found so far.
	Errors() Errors
}

type SliceTokenStream struct {
	tokens []Spanned
	errs   Errors
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []Spanned, errs Errors) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
		errs:   errs,
	}
}

func (s *SliceTokenStream) Current() Spanned {
	if s.idx >= len(s.tokens) {
		end := 0
		if len(s.tokens) > 0 {
			end = s.tokens[len(s.tokens)-1].Span.End
		}
		return Spanned{
			Token: Token{Kind: TokenEOF},
			Span:  Span{Start: end, End: end},
		}
	}
	return s.tokens[s.idx]
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}

func (s *SliceTokenStream) Errors() Errors {
	return s.errs
}
