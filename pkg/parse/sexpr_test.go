package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swap357/egglog-latex/pkg/lang"
)

func TestParseSExprRewrite(t *testing.T) {
	nodes, err := ParseSExprRules(`(rewrite (Add a b) (Add b a))`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	rule, ok := nodes[0].(*lang.Rule)
	require.True(t, ok)
	require.Equal(t, "Add(a, b)", rule.Head.Format().String())
	require.Equal(t, "Add(b, a)", rule.Body.Format().String())
	require.Empty(t, rule.Guards)
}

func TestParseSExprRule(t *testing.T) {
	nodes, err := ParseSExprRules(`(rule ((= x (Num n)) (>= n 0)) ((set (abs x) n)))`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	inf, ok := nodes[0].(*lang.Inference)
	require.True(t, ok)
	require.Len(t, inf.Premises, 2)
	require.Equal(t, "x = Num(n)", inf.Premises[0].Format().String())
	require.Equal(t, "n >= 0", inf.Premises[1].Format().String())
	require.Len(t, inf.Conclusions, 1)
	require.Equal(t, "set(abs(x), n)", inf.Conclusions[0].Format().String())
}

func TestParseSExprAtoms(t *testing.T) {
	nodes, err := ParseSExprRules(`(rewrite (scale v -2) (scale v "two"))`)
	require.NoError(t, err)

	rule := nodes[0].(*lang.Rule)
	call := rule.Head.(*lang.EFuncCall)
	require.IsType(t, lang.NewIntLit(0), call.Args[1])
	call = rule.Body.(*lang.EFuncCall)
	require.IsType(t, lang.NewStringLit(""), call.Args[1])
}

func TestParseSExprMultipleRules(t *testing.T) {
	input := `
		(rewrite (Add a b) (Add b a))
		(rule ((>= n 1)) ((pos n)))
	`
	nodes, err := ParseSExprRules(input)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.IsType(t, &lang.Rule{}, nodes[0])
	require.IsType(t, &lang.Inference{}, nodes[1])
}

func TestParseSExprErrors(t *testing.T) {
	testCases := []struct {
		in      string
		errPart string
	}{
		{`bloop`, "expected a (rewrite ...) or (rule ...) form"},
		{`(define x 3)`, `unrecognized rule form "define"`},
		{`(rewrite (f x))`, "left- and a right-hand side"},
		{`(rule (f x) g)`, "premise list and a conclusion list"},
		{`(rewrite () (f x))`, "empty expression"},
		{`(rewrite ((f) x) (f x))`, "head must be an atom"},
		{`(rewrite (>= a) (f a))`, "operator >= takes two arguments"},
		{`(rewrite (f x) (g x)`, ""}, // unbalanced parens
		{``, "no rules found"},
	}

	for idx, testCase := range testCases {
		_, err := ParseSExprRules(testCase.in)
		if err == nil {
			t.Fatalf(`case %d: expected a parse error for "%s"`, idx, testCase.in)
		}
		require.IsType(t, &ParseError{}, err, "case %d", idx)
		if testCase.errPart != "" {
			require.Contains(t, err.Error(), testCase.errPart, "case %d", idx)
		}
	}
}
