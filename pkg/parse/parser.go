package parse

import (
	"strings"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/swap357/egglog-latex/pkg/lang"
)

var (
	ruleLexer = lexer.Must(lexer.Regexp(`(\s+)` +
		`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)` +
		`|(?P<Number>\d+)` +
		`|(?P<String>"[^"]*")` +
		`|(?P<CmpOp><=>|>=|<=|==|!=|<|>|=)` +
		`|(?P<ArithOp>[-+*/%])` +
		`|(?P<Punct>[().,])`,
	))
	ruleParser = participle.MustBuild(&ruleGrammar{},
		participle.Lexer(ruleLexer),
		participle.Unquote("String"),
	)
)

type ruleGrammar struct {
	Head   *exprGrammar   `parser:"\"rewrite\" \"(\" @@ \")\""`
	Body   *exprGrammar   `parser:"\".\" \"to\" \"(\" @@"`
	Guards []*condGrammar `parser:"{ \",\" @@ } \")\""`
}

type condGrammar struct {
	Left  *exprGrammar `parser:"@@"`
	Op    string       `parser:"@CmpOp"`
	Right *exprGrammar `parser:"@@"`
}

type exprGrammar struct {
	Head *termGrammar     `parser:"@@"`
	Tail []*opTermGrammar `parser:"{ @@ }"`
}

type opTermGrammar struct {
	Op   string       `parser:"@ArithOp"`
	Term *termGrammar `parser:"@@"`
}

type termGrammar struct {
	Number *int         `parser:"  @Number"`
	Str    *string      `parser:"| @String"`
	Call   *callGrammar `parser:"| @@"`
}

type callGrammar struct {
	Name   string         `parser:"@Ident"`
	IsCall bool           `parser:"[ @\"(\""`
	Args   []*exprGrammar `parser:"  [ @@ { \",\" @@ } ] \")\" ]"`
}

// Parse parses a rule of the form `rewrite(<head>).to(<body>, <guard>, ...)`.
// The guard operator only needs to lex here; whether it has a LaTeX
// spelling is the renderer's concern.
func Parse(input string) (*lang.Rule, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &ParseError{Message: "empty input"}
	}
	if idx := strings.IndexAny(trimmed, "\r\n"); idx >= 0 {
		return nil, &ParseError{Segment: trimmed[idx:], Message: "rules must be single-line"}
	}
	ast := &ruleGrammar{}
	if err := ruleParser.ParseString(trimmed, ast); err != nil {
		return nil, &ParseError{Segment: segmentAt(trimmed, err), Cause: err}
	}
	return ast.rule(), nil
}

// segmentAt recovers the part of the input the parser couldn't match.
func segmentAt(input string, err error) string {
	if perr, ok := err.(participle.Error); ok {
		offset := perr.Token().Pos.Offset
		if offset >= 0 && offset < len(input) {
			return input[offset:]
		}
		return ""
	}
	return input
}

func (g *ruleGrammar) rule() *lang.Rule {
	rule := &lang.Rule{
		Head: g.Head.expr(),
		Body: g.Body.expr(),
	}
	for _, guard := range g.Guards {
		rule.Guards = append(rule.Guards, lang.Condition{
			Left:  guard.Left.expr(),
			Op:    guard.Op,
			Right: guard.Right.expr(),
		})
	}
	return rule
}

func (g *exprGrammar) expr() lang.Expr {
	out := g.Head.expr()
	for _, opTerm := range g.Tail {
		out = lang.NewBinOp(out, opTerm.Op, opTerm.Term.expr())
	}
	return out
}

func (g *termGrammar) expr() lang.Expr {
	switch {
	case g.Number != nil:
		return lang.NewIntLit(*g.Number)
	case g.Str != nil:
		return lang.NewStringLit(*g.Str)
	case g.Call.IsCall:
		args := make([]lang.Expr, len(g.Call.Args))
		for idx, arg := range g.Call.Args {
			args[idx] = arg.expr()
		}
		return lang.NewFuncCall(g.Call.Name, args)
	default:
		return lang.NewVar(g.Call.Name)
	}
}
