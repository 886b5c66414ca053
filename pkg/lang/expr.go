package lang

import (
	pp "github.com/swap357/egglog-latex/pkg/prettyprint"
)

// Expr is a node in a rule's expression tree: a functor call, an operator
// application, or an atom. Expressions are trees (no cycles) and are not
// modified after parsing.
type Expr interface {
	// Format returns the expression in egglog rule notation.
	Format() pp.Doc
}

// Var

type EVar struct {
	Name string
}

var _ Expr = &EVar{}

func NewVar(name string) *EVar {
	return &EVar{Name: name}
}

func (e *EVar) Format() pp.Doc {
	return pp.Text(e.Name)
}

// Int

type EIntLit int

var _ Expr = NewIntLit(0)

func NewIntLit(i int) *EIntLit {
	val := EIntLit(i)
	return &val
}

func (e *EIntLit) Format() pp.Doc {
	return pp.Textf("%d", *e)
}

// String

type EStringLit string

var eEmptyStr = EStringLit("")
var _ Expr = &eEmptyStr

func NewStringLit(s string) *EStringLit {
	val := EStringLit(s)
	return &val
}

func (e *EStringLit) Format() pp.Doc {
	return pp.Textf("%#v", string(*e))
}

// Func call

type EFuncCall struct {
	Name string
	Args []Expr
}

var _ Expr = &EFuncCall{}

func NewFuncCall(name string, args []Expr) *EFuncCall {
	return &EFuncCall{
		Name: name,
		Args: args,
	}
}

func (e *EFuncCall) Format() pp.Doc {
	argDocs := make([]pp.Doc, len(e.Args))
	for idx, arg := range e.Args {
		argDocs[idx] = arg.Format()
	}
	return pp.Seq([]pp.Doc{
		pp.Text(e.Name),
		pp.Text("("),
		pp.Join(argDocs, pp.CommaSpace),
		pp.Text(")"),
	})
}

// Binary op

type EBinOp struct {
	Left  Expr
	Op    string
	Right Expr
}

var _ Expr = &EBinOp{}

func NewBinOp(left Expr, op string, right Expr) *EBinOp {
	return &EBinOp{
		Left:  left,
		Op:    op,
		Right: right,
	}
}

func (e *EBinOp) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		e.Left.Format(),
		pp.Textf(" %s ", e.Op),
		e.Right.Format(),
	})
}

// FuncNames returns the names of all functor calls in the expression, in
// depth-first order.
func FuncNames(e Expr) []string {
	var names []string
	var visit func(Expr)
	visit = func(e Expr) {
		switch t := e.(type) {
		case *EFuncCall:
			names = append(names, t.Name)
			for _, arg := range t.Args {
				visit(arg)
			}
		case *EBinOp:
			visit(t.Left)
			visit(t.Right)
		}
	}
	visit(e)
	return names
}
