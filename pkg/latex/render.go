package latex

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/swap357/egglog-latex/pkg/lang"
	pp "github.com/swap357/egglog-latex/pkg/prettyprint"
)

// A RenderError reports an operator with no entry in the symbol table.
type RenderError struct {
	Symbol string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("no LaTeX symbol for operator %q", e.Symbol)
}

// A Renderer turns parsed rules into LaTeX inference rules
// (`\frac{premises}{conclusion}`).
type Renderer struct {
	Symbols SymbolTable
	// TextIdents wraps multi-character identifiers in \text{}, the style
	// used for s-expression input.
	TextIdents bool
}

func NewRenderer() *Renderer {
	return &Renderer{Symbols: DefaultSymbols()}
}

func (r *Renderer) Node(node lang.Node) (string, error) {
	switch n := node.(type) {
	case *lang.Rule:
		return r.Rule(n)
	case *lang.Inference:
		return r.Inference(n)
	default:
		return "", errors.Errorf("don't know how to render %T", node)
	}
}

// Rule renders a rewrite rule as
// `\frac{expr = <head>, <guard_1>, ...}{expr \to <body>}`,
// guards in written order.
func (r *Renderer) Rule(rule *lang.Rule) (string, error) {
	headDoc, err := r.expr(rule.Head)
	if err != nil {
		return "", err
	}
	bodyDoc, err := r.expr(rule.Body)
	if err != nil {
		return "", err
	}
	premises := []pp.Doc{
		pp.Seq([]pp.Doc{pp.Text(`expr = `), headDoc}),
	}
	for _, guard := range rule.Guards {
		guardDoc, err := r.binary(guard.Left, guard.Op, guard.Right)
		if err != nil {
			return "", err
		}
		premises = append(premises, guardDoc)
	}
	return frac(
		pp.Join(premises, pp.CommaSpace),
		pp.Seq([]pp.Doc{pp.Text(`expr \to `), bodyDoc}),
	), nil
}

// Inference renders a `(rule ...)` form with its premises over its
// conclusions.
func (r *Renderer) Inference(inf *lang.Inference) (string, error) {
	numerator, err := r.side(inf.Premises)
	if err != nil {
		return "", err
	}
	denominator, err := r.side(inf.Conclusions)
	if err != nil {
		return "", err
	}
	return frac(numerator, denominator), nil
}

// side lays out one side of the fraction: a lone item stands alone,
// several stack in an array environment, none means "always".
func (r *Renderer) side(exprs []lang.Expr) (pp.Doc, error) {
	docs := make([]pp.Doc, len(exprs))
	for idx, expr := range exprs {
		doc, err := r.expr(expr)
		if err != nil {
			return nil, err
		}
		docs[idx] = doc
	}
	switch len(docs) {
	case 0:
		return pp.Text(`\text{true}`), nil
	case 1:
		return docs[0], nil
	default:
		return pp.Seq([]pp.Doc{
			pp.Text(`\begin{array}{l} `),
			pp.Join(docs, pp.Text(` \\ `)),
			pp.Text(` \end{array}`),
		}), nil
	}
}

func frac(numerator, denominator pp.Doc) string {
	return pp.Seq([]pp.Doc{
		pp.Text(`\frac{`),
		numerator,
		pp.Text(`}{`),
		denominator,
		pp.Text(`}`),
	}).String()
}

func (r *Renderer) expr(e lang.Expr) (pp.Doc, error) {
	switch t := e.(type) {
	case *lang.EVar:
		return r.ident(t.Name), nil
	case *lang.EIntLit:
		return pp.Textf("%d", int(*t)), nil
	case *lang.EStringLit:
		return pp.Textf("%#v", string(*t)), nil
	case *lang.EFuncCall:
		argDocs := make([]pp.Doc, len(t.Args))
		for idx, arg := range t.Args {
			argDoc, err := r.expr(arg)
			if err != nil {
				return nil, err
			}
			argDocs[idx] = argDoc
		}
		return pp.Seq([]pp.Doc{
			r.ident(t.Name),
			pp.Text("("),
			pp.Join(argDocs, pp.CommaSpace),
			pp.Text(")"),
		}), nil
	case *lang.EBinOp:
		return r.binary(t.Left, t.Op, t.Right)
	default:
		return nil, errors.Errorf("don't know how to render %T", e)
	}
}

func (r *Renderer) binary(left lang.Expr, op string, right lang.Expr) (pp.Doc, error) {
	symbol, ok := r.symbolFor(op)
	if !ok {
		return nil, &RenderError{Symbol: op}
	}
	leftDoc, err := r.expr(left)
	if err != nil {
		return nil, err
	}
	rightDoc, err := r.expr(right)
	if err != nil {
		return nil, err
	}
	return pp.Seq([]pp.Doc{
		leftDoc,
		pp.Textf(" %s ", symbol),
		rightDoc,
	}), nil
}

func (r *Renderer) symbolFor(op string) (string, bool) {
	symbols := r.Symbols
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	symbol, ok := symbols[op]
	return symbol, ok
}

func (r *Renderer) ident(name string) pp.Doc {
	if !r.TextIdents || bareIdent(name) {
		return pp.Text(name)
	}
	return pp.Textf(`\text{%s}`, strings.Replace(name, "_", `\_`, -1))
}

// Single letters and numbers read fine in math mode; anything longer gets
// \text{} so LaTeX doesn't typeset it as a product of variables.
func bareIdent(name string) bool {
	if name == "" {
		return true
	}
	runes := []rune(name)
	if len(runes) == 1 && unicode.IsLetter(runes[0]) {
		return true
	}
	for _, c := range runes {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}
