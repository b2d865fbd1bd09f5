package vanalang

import (
	"strings"
	"testing"
)

func TestNodeString(t *testing.T) {
	tests := []struct {
		node     Node
		expected string
	}{
		{&Float{Value: 0.25}, "Float(0.25)"},
		{&Not{Operand: &Var{Name: "ok"}}, "Not(Var(ok))"},
		{&VarDecl{Name: "name", Value: &Int{Value: 1}}, "VarDecl(name, Int(1))"},
		{&Call{Name: "f"}, "Call(f)"},
		{&Div{Lhs: &Int{Value: 1}, Rhs: &Neg{Operand: &Int{Value: 2}}}, "Div(Int(1), Neg(Int(2)))"},
	}
	for _, test := range tests {
		if str := test.node.String(); str != test.expected {
			t.Errorf("got %s, want %s", str, test.expected)
		}
	}
}

func TestWalk(t *testing.T) {
	node, err := ParseString("test", "f(1, -x) + 2 * y")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for n := range Walk(node) {
		str := n.String()
		names = append(names, str[:strings.IndexByte(str, '(')])
		if KindOf(n) != names[len(names)-1] {
			t.Fatalf("got %s", KindOf(n))
		}
	}
	if str := strings.Join(names, " "); str != "Add Call Int Neg Var Mul Int Var" {
		t.Fatalf("got %s", str)
	}

	// early stop
	n := 0
	for range Walk(node) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}

	if len(Children(&Int{})) != 0 {
		t.Fatal()
	}
}
