package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/swap357/egglog-latex/pkg/lang"
)

var (
	sexprLexer = lexer.Must(lexer.Regexp(`(\s+)` +
		`|(?P<Punct>[()])` +
		`|(?P<Atom>[^()\s]+)`,
	))
	sexprParser = participle.MustBuild(&sexprProgram{},
		participle.Lexer(sexprLexer),
	)
)

type sexprProgram struct {
	Rules []*sexprNode `parser:"{ @@ }"`
}

type sexprNode struct {
	Open  bool         `parser:"( @\"(\""`
	Items []*sexprNode `parser:"  { @@ } \")\" )"`
	Atom  *string      `parser:"| @Atom"`
}

// ParseSExprRules parses native egglog notation: one or more
// `(rewrite lhs rhs)` or `(rule (premises...) (conclusions...))` forms,
// in written order.
func ParseSExprRules(input string) ([]lang.Node, error) {
	program := &sexprProgram{}
	if err := sexprParser.ParseString(input, program); err != nil {
		return nil, &ParseError{Segment: segmentAt(input, err), Cause: err}
	}
	if len(program.Rules) == 0 {
		return nil, &ParseError{Segment: input, Message: "no rules found"}
	}
	nodes := make([]lang.Node, len(program.Rules))
	for idx, rule := range program.Rules {
		node, err := rule.ruleNode()
		if err != nil {
			return nil, err
		}
		nodes[idx] = node
	}
	return nodes, nil
}

func (n *sexprNode) ruleNode() (lang.Node, error) {
	if !n.Open || len(n.Items) == 0 || n.Items[0].Atom == nil {
		return nil, &ParseError{Segment: n.text(), Message: "expected a (rewrite ...) or (rule ...) form"}
	}
	switch head := *n.Items[0].Atom; head {
	case "rewrite":
		if len(n.Items) != 3 {
			return nil, &ParseError{Segment: n.text(), Message: "rewrite takes a left- and a right-hand side"}
		}
		lhs, err := n.Items[1].expr()
		if err != nil {
			return nil, err
		}
		rhs, err := n.Items[2].expr()
		if err != nil {
			return nil, err
		}
		return &lang.Rule{Head: lhs, Body: rhs}, nil
	case "rule":
		if len(n.Items) != 3 || !n.Items[1].Open || !n.Items[2].Open {
			return nil, &ParseError{Segment: n.text(), Message: "rule takes a premise list and a conclusion list"}
		}
		premises, err := exprList(n.Items[1].Items)
		if err != nil {
			return nil, err
		}
		conclusions, err := exprList(n.Items[2].Items)
		if err != nil {
			return nil, err
		}
		return &lang.Inference{Premises: premises, Conclusions: conclusions}, nil
	default:
		return nil, &ParseError{Segment: n.text(), Message: fmt.Sprintf("unrecognized rule form %q", head)}
	}
}

func exprList(items []*sexprNode) ([]lang.Expr, error) {
	exprs := make([]lang.Expr, len(items))
	for idx, item := range items {
		expr, err := item.expr()
		if err != nil {
			return nil, err
		}
		exprs[idx] = expr
	}
	return exprs, nil
}

func (n *sexprNode) expr() (lang.Expr, error) {
	if n.Atom != nil {
		return atomExpr(*n.Atom), nil
	}
	if len(n.Items) == 0 {
		return nil, &ParseError{Segment: "()", Message: "empty expression"}
	}
	head := n.Items[0]
	if head.Atom == nil {
		return nil, &ParseError{Segment: n.text(), Message: "expression head must be an atom"}
	}
	name := *head.Atom
	if isOperator(name) {
		if len(n.Items) != 3 {
			return nil, &ParseError{Segment: n.text(), Message: fmt.Sprintf("operator %s takes two arguments", name)}
		}
		left, err := n.Items[1].expr()
		if err != nil {
			return nil, err
		}
		right, err := n.Items[2].expr()
		if err != nil {
			return nil, err
		}
		return lang.NewBinOp(left, name, right), nil
	}
	args, err := exprList(n.Items[1:])
	if err != nil {
		return nil, err
	}
	return lang.NewFuncCall(name, args), nil
}

func atomExpr(atom string) lang.Expr {
	if i, err := strconv.Atoi(atom); err == nil {
		return lang.NewIntLit(i)
	}
	if len(atom) >= 2 && strings.HasPrefix(atom, `"`) && strings.HasSuffix(atom, `"`) {
		return lang.NewStringLit(atom[1 : len(atom)-1])
	}
	return lang.NewVar(atom)
}

// Operator atoms like `=` or `>=` start with a symbol character; anything
// identifier-shaped is a functor.
func isOperator(name string) bool {
	c := name[0]
	return !(c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9'))
}

// text reprints the node, for error messages.
func (n *sexprNode) text() string {
	if n.Atom != nil {
		return *n.Atom
	}
	parts := make([]string, len(n.Items))
	for idx, item := range n.Items {
		parts[idx] = item.text()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
