package vanalang

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 + 2 - (3 * 9 / 7)", "Sub(Add(Int(2), Int(2)), Div(Mul(Int(3), Int(9)), Int(7)))"},
		{"10 - 3 - 2", "Sub(Sub(Int(10), Int(3)), Int(2))"},
		{"8 / 4 / 2", "Div(Div(Int(8), Int(4)), Int(2))"},
		{"1 + 2 * 3", "Add(Int(1), Mul(Int(2), Int(3)))"},
		{"(1 + 2) * 3", "Mul(Add(Int(1), Int(2)), Int(3))"},
		{"1 * 2 + 3 * 4", "Add(Mul(Int(1), Int(2)), Mul(Int(3), Int(4)))"},
		{"42", "Int(42)"},
		{"1.5 * 2", "Mul(Float(1.5), Int(2))"},
		{"x", "Var(x)"},
		{"-x", "Neg(Var(x))"},
		{"- - 1", "Neg(Neg(Int(1)))"},
		{"--1", "Neg(Neg(Int(1)))"},
		{"-2 * 3", "Mul(Neg(Int(2)), Int(3))"},
		{"2*-3", "Mul(Int(2), Neg(Int(3)))"},
		{"1--2", "Sub(Int(1), Neg(Int(2)))"},
		{"1+-2", "Add(Int(1), Neg(Int(2)))"},
		{"-(1 + 2)", "Neg(Add(Int(1), Int(2)))"},
		{"f()", "Call(f)"},
		{"f(1)", "Call(f, Int(1))"},
		{"f(1, x + 2,)", "Call(f, Int(1), Add(Var(x), Int(2)))"},
		{"g(f(1), -y) * 2", "Mul(Call(g, Call(f, Int(1)), Neg(Var(y))), Int(2))"},
		{"((((7))))", "Int(7)"},
		{" 1 @ one\n + @ plus\n 2 ", "Add(Int(1), Int(2))"},
		{"-9223372036854775808", "Int(-9223372036854775808)"},
		{"--9223372036854775808", "Neg(Int(-9223372036854775808))"},
		{"1 - -9223372036854775808", "Sub(Int(1), Int(-9223372036854775808))"},
		{"-9223372036854775807", "Neg(Int(9223372036854775807))"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			node, err := ParseString("test", test.input)
			if err != nil {
				t.Fatal(err)
			}
			if str := node.String(); str != test.expected {
				t.Fatalf("got %s, want %s", str, test.expected)
			}
		})
	}
}

func TestParseSpans(t *testing.T) {
	tests := []struct {
		input string
		span  Span
	}{
		{"2 + 3", Span{0, 5}},
		{"-x", Span{0, 2}},
		{" f(1, 2) ", Span{1, 8}},
		{"(1)", Span{1, 2}},
		{"a * (b)", Span{0, 6}},
	}
	for _, test := range tests {
		node, err := ParseString("test", test.input)
		if err != nil {
			t.Fatal(err)
		}
		if node.Span() != test.span {
			t.Fatalf("%q: got %v, want %v", test.input, node.Span(), test.span)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
		span  Span
	}{
		{"(1 + 2", ErrExpectedToken, Span{6, 6}},
		{"1 +", ErrDanglingOperator, Span{2, 3}},
		{"1 * )", ErrDanglingOperator, Span{2, 3}},
		{")", ErrExpectedExpression, Span{0, 1}},
		{"", ErrExpectedExpression, Span{0, 0}},
		{"if", ErrExpectedExpression, Span{0, 2}},
		{`"s" + 1`, ErrExpectedExpression, Span{0, 3}},
		{"1 2", ErrUnexpectedToken, Span{2, 3}},
		{"1 == 2", ErrUnexpectedToken, Span{2, 4}},
		{"!x", ErrUnexpectedToken, Span{0, 1}},
		{"f(1 2)", ErrExpectedToken, Span{4, 5}},
		{"f(,)", ErrExpectedExpression, Span{2, 3}},
		{"f(1", ErrExpectedToken, Span{3, 3}},
		{"99999999999999999999", ErrIntRange, Span{0, 20}},
		{"9223372036854775808", ErrIntRange, Span{0, 19}},
		{"1 - 9223372036854775808", ErrIntRange, Span{4, 23}},
		{"-(9223372036854775808)", ErrIntRange, Span{2, 21}},
		{"-9223372036854775809", ErrIntRange, Span{1, 20}},
		{"1 // 2", ErrDanglingOperator, Span{2, 3}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			node, err := ParseString("test", test.input)
			if err == nil {
				t.Fatalf("expected error, got %v", node)
			}
			if node != nil {
				t.Fatalf("got node %v", node)
			}
			if !errors.Is(err, test.err) {
				t.Fatalf("got %v", err)
			}
			var errs Errors
			if !errors.As(err, &errs) {
				t.Fatalf("got %T", err)
			}
			if len(errs) != 1 {
				t.Fatalf("got %v", errs)
			}
			if errs[0].Kind != SyntaxError {
				t.Fatalf("got %v", errs[0].Kind)
			}
			if errs[0].Span != test.span {
				t.Fatalf("got %v, want %v", errs[0].Span, test.span)
			}
		})
	}
}

func TestParseMinInt64Span(t *testing.T) {
	node, err := ParseString("test", "2 * -9223372036854775808")
	if err != nil {
		t.Fatal(err)
	}
	mul, ok := node.(*Mul)
	if !ok {
		t.Fatalf("got %T", node)
	}
	lit, ok := mul.Rhs.(*Int)
	if !ok {
		t.Fatalf("got %T", mul.Rhs)
	}
	if lit.Value != math.MinInt64 {
		t.Fatalf("got %d", lit.Value)
	}
	if lit.Loc != (Span{4, 24}) {
		t.Fatalf("got %v", lit.Loc)
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)

	_, err := ParseString("test", deep)
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("got %v", err)
	}

	node, err := ParseString("test", deep, WithMaxDepth(1000))
	if err != nil {
		t.Fatal(err)
	}
	if node.String() != "Int(1)" {
		t.Fatalf("got %v", node)
	}

	_, err = ParseString("test", strings.Repeat("f(", 10)+strings.Repeat(")", 10), WithMaxDepth(5))
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("got %v", err)
	}

	_, err = ParseString("test", strings.Repeat("-", 10)+"1", WithMaxDepth(5))
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("got %v", err)
	}
}

func TestParseCollectsLexicalErrors(t *testing.T) {
	_, err := ParseString("test", "1 + # 2")
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("got %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != LexicalError || errs[0].Span != (Span{4, 5}) {
		t.Fatalf("got %v", errs)
	}

	// the syntax error stops parsing but scanning goes on
	_, err = ParseString("test", "(1 # 2 $")
	if !errors.As(err, &errs) {
		t.Fatalf("got %v", err)
	}
	if len(errs) != 3 {
		t.Fatalf("got %v", errs)
	}
	if errs[0].Kind != LexicalError || errs[0].Span != (Span{3, 4}) {
		t.Fatalf("got %v", errs[0])
	}
	if errs[1].Kind != SyntaxError || errs[1].Span != (Span{5, 6}) {
		t.Fatalf("got %v", errs[1])
	}
	if errs[2].Kind != LexicalError || errs[2].Span != (Span{7, 8}) {
		t.Fatalf("got %v", errs[2])
	}
}

func TestParseSliceTokenStream(t *testing.T) {
	src := NewSource("test", "a * (b + 1)")
	tokens, errs := Tokenize(src)
	node, err := Parse(NewSliceTokenStream(tokens, errs), WithSource(src))
	if err != nil {
		t.Fatal(err)
	}
	if str := node.String(); str != "Mul(Var(a), Add(Var(b), Int(1)))" {
		t.Fatalf("got %s", str)
	}

	src = NewSource("test", "a *")
	tokens, errs = Tokenize(src)
	_, err = Parse(NewSliceTokenStream(tokens, errs), WithSource(src))
	var posErr *PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("got %v", err)
	}
	if posErr.Source != src {
		t.Fatal("source not attached")
	}
}

func TestParseAll(t *testing.T) {
	nodes, err := ParseAllSource(NewSource("test", "1 + 2; 3 *; (4); f(,); 5"))
	var got []string
	for _, node := range nodes {
		got = append(got, node.String())
	}
	if str := strings.Join(got, " "); str != "Add(Int(1), Int(2)) Int(4) Int(5)" {
		t.Fatalf("got %s", str)
	}

	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("got %v", err)
	}
	if len(errs) != 2 {
		t.Fatalf("got %v", errs)
	}
	if !errors.Is(errs[0], ErrDanglingOperator) || errs[0].Span != (Span{9, 10}) {
		t.Fatalf("got %v", errs[0])
	}
	if !errors.Is(errs[1], ErrExpectedExpression) || errs[1].Span != (Span{19, 20}) {
		t.Fatalf("got %v", errs[1])
	}
}

func TestParseAllRecovery(t *testing.T) {
	nodes, err := ParseAllSource(NewSource("test", ";; x y; # ; 1 +; (2"))
	if len(nodes) != 0 {
		t.Fatalf("got %v", nodes)
	}
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("got %v", err)
	}
	kinds := []ErrorKind{SyntaxError, LexicalError, SyntaxError, SyntaxError}
	if len(errs) != len(kinds) {
		t.Fatalf("got %v", errs)
	}
	for i, kind := range kinds {
		if errs[i].Kind != kind {
			t.Fatalf("%d: got %v", i, errs[i])
		}
	}
	if !errors.Is(errs[0], ErrExpectedToken) {
		t.Fatalf("got %v", errs[0])
	}

	nodes, err = ParseAllSource(NewSource("test", "1; 2;"))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %v", nodes)
	}

	nodes, err = ParseAllSource(NewSource("test", ""))
	if err != nil || len(nodes) != 0 {
		t.Fatalf("got %v %v", nodes, err)
	}
}

func TestParseConcurrently(t *testing.T) {
	inputs := map[string]string{
		"1 + 2":     "Add(Int(1), Int(2))",
		"a * b - c": "Sub(Mul(Var(a), Var(b)), Var(c))",
		"f(-1)":     "Call(f, Neg(Int(1)))",
	}
	wg := new(sync.WaitGroup)
	for range 8 {
		for input, expected := range inputs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				node, err := ParseString("test", input)
				if err != nil {
					t.Error(err)
					return
				}
				if node.String() != expected {
					t.Errorf("got %v", node)
				}
			}()
		}
	}
	wg.Wait()
}

func FuzzParse(f *testing.F) {
	f.Add("2 + 2 - (3 * 9 / 7)")
	f.Add("f(1,,)")
	f.Add("((((")
	f.Add("----")
	f.Add("1; 2 +; (3")
	f.Fuzz(func(t *testing.T, input string) {
		node, err := ParseString("fuzz", input)
		if (node == nil) == (err == nil) {
			t.Fatalf("got node %v and error %v", node, err)
		}
		_, _ = ParseAllSource(NewSource("fuzz", input))
	})
}
