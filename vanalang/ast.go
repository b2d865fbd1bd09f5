package vanalang

import (
	"iter"
	"strconv"
	"strings"
)

// Node is an immutable AST node. Each node owns its children.
type Node interface {
	Span() Span
	String() string
	node()
}

type Int struct {
	Value int64
	Loc   Span
}

type Float struct {
	Value float64
	Loc   Span
}

type Var struct {
	Name string
	Loc  Span
}

// Neg is unary arithmetic negation.
type Neg struct {
	Operand Node
	Loc     Span
}

// Not is boolean negation. The expression grammar does not produce it yet.
type Not struct {
	Operand Node
	Loc     Span
}

// VarDecl binds Name to Value. Declarations are not parsed yet.
type VarDecl struct {
	Name  string
	Value Node
	Loc   Span
}

type Add struct {
	Lhs, Rhs Node
	Loc      Span
}

type Sub struct {
	Lhs, Rhs Node
	Loc      Span
}

type Mul struct {
	Lhs, Rhs Node
	Loc      Span
}

type Div struct {
	Lhs, Rhs Node
	Loc      Span
}

type Call struct {
	Name string
	Args []Node
	Loc  Span
}

func (*Int) node()     {}
func (*Float) node()   {}
func (*Var) node()     {}
func (*Neg) node()     {}
func (*Not) node()     {}
func (*VarDecl) node() {}
func (*Add) node()     {}
func (*Sub) node()     {}
func (*Mul) node()     {}
func (*Div) node()     {}
func (*Call) node()    {}

func (n *Int) Span() Span     { return n.Loc }
func (n *Float) Span() Span   { return n.Loc }
func (n *Var) Span() Span     { return n.Loc }
func (n *Neg) Span() Span     { return n.Loc }
func (n *Not) Span() Span     { return n.Loc }
func (n *VarDecl) Span() Span { return n.Loc }
func (n *Add) Span() Span     { return n.Loc }
func (n *Sub) Span() Span     { return n.Loc }
func (n *Mul) Span() Span     { return n.Loc }
func (n *Div) Span() Span     { return n.Loc }
func (n *Call) Span() Span    { return n.Loc }

func (n *Int) String() string {
	return "Int(" + strconv.FormatInt(n.Value, 10) + ")"
}

func (n *Float) String() string {
	return "Float(" + strconv.FormatFloat(n.Value, 'g', -1, 64) + ")"
}

func (n *Var) String() string {
	return "Var(" + n.Name + ")"
}

func (n *Neg) String() string {
	return format("Neg", n.Operand)
}

func (n *Not) String() string {
	return format("Not", n.Operand)
}

func (n *VarDecl) String() string {
	return "VarDecl(" + n.Name + ", " + n.Value.String() + ")"
}

func (n *Add) String() string {
	return format("Add", n.Lhs, n.Rhs)
}

func (n *Sub) String() string {
	return format("Sub", n.Lhs, n.Rhs)
}

func (n *Mul) String() string {
	return format("Mul", n.Lhs, n.Rhs)
}

func (n *Div) String() string {
	return format("Div", n.Lhs, n.Rhs)
}

func (n *Call) String() string {
	var sb strings.Builder
	sb.WriteString("Call(")
	sb.WriteString(n.Name)
	for _, arg := range n.Args {
		sb.WriteString(", ")
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func format(name string, children ...Node) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("(")
	for i, child := range children {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(child.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Neg:
		return []Node{n.Operand}
	case *Not:
		return []Node{n.Operand}
	case *VarDecl:
		return []Node{n.Value}
	case *Add:
		return []Node{n.Lhs, n.Rhs}
	case *Sub:
		return []Node{n.Lhs, n.Rhs}
	case *Mul:
		return []Node{n.Lhs, n.Rhs}
	case *Div:
		return []Node{n.Lhs, n.Rhs}
	case *Call:
		return n.Args
	}
	return nil
}

// Walk yields n and its descendants in pre-order.
func Walk(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walk(n, yield)
	}
}

func walk(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range Children(n) {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

// KindOf returns the constructor name used by String, such as "Add".
func KindOf(n Node) string {
	switch n.(type) {
	case *Int:
		return "Int"
	case *Float:
		return "Float"
	case *Var:
		return "Var"
	case *Neg:
		return "Neg"
	case *Not:
		return "Not"
	case *VarDecl:
		return "VarDecl"
	case *Add:
		return "Add"
	case *Sub:
		return "Sub"
	case *Mul:
		return "Mul"
	case *Div:
		return "Div"
	case *Call:
		return "Call"
	}
	return ""
}
