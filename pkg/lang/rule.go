package lang

import (
	pp "github.com/swap357/egglog-latex/pkg/prettyprint"
)

// Node is a parsed rule in either notation: a *Rule (rewrite) or an
// *Inference (rule with premises and conclusions).
type Node interface {
	node()
}

// A Condition is a side condition restricting when a rewrite applies: a
// binary relation between two expressions, e.g. `ival >= 1`.
type Condition struct {
	Left  Expr
	Op    string
	Right Expr
}

func (c Condition) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		c.Left.Format(),
		pp.Textf(" %s ", c.Op),
		c.Right.Format(),
	})
}

// A Rule is a parsed rewrite rule: when an expression matches Head (and
// every guard holds), it may be rewritten to Body. Guards keep the order
// they were written in.
type Rule struct {
	Head   Expr
	Body   Expr
	Guards []Condition
}

var _ Node = &Rule{}

func (*Rule) node() {}

// Format returns the rule in `rewrite(head).to(body, guards...)` notation.
func (r *Rule) Format() pp.Doc {
	toArgs := []pp.Doc{r.Body.Format()}
	for _, guard := range r.Guards {
		toArgs = append(toArgs, guard.Format())
	}
	return pp.Seq([]pp.Doc{
		pp.Text("rewrite("),
		r.Head.Format(),
		pp.Text(").to("),
		pp.Join(toArgs, pp.CommaSpace),
		pp.Text(")"),
	})
}

// An Inference is a parsed `(rule (premises...) (conclusions...))` form:
// if every premise holds, every conclusion may be asserted. Both sides
// keep their written order; an empty premise list means "always".
type Inference struct {
	Premises    []Expr
	Conclusions []Expr
}

var _ Node = &Inference{}

func (*Inference) node() {}
