package latex

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swap357/egglog-latex/pkg/lang"
)

func powRule() *lang.Rule {
	// rewrite(pow(x, Lit64(ival))).to(mul(x, pow(x, Lit64(ival - 1))), ival >= 1)
	return &lang.Rule{
		Head: lang.NewFuncCall("pow", []lang.Expr{
			lang.NewVar("x"),
			lang.NewFuncCall("Lit64", []lang.Expr{lang.NewVar("ival")}),
		}),
		Body: lang.NewFuncCall("mul", []lang.Expr{
			lang.NewVar("x"),
			lang.NewFuncCall("pow", []lang.Expr{
				lang.NewVar("x"),
				lang.NewFuncCall("Lit64", []lang.Expr{
					lang.NewBinOp(lang.NewVar("ival"), "-", lang.NewIntLit(1)),
				}),
			}),
		}),
		Guards: []lang.Condition{
			{Left: lang.NewVar("ival"), Op: ">=", Right: lang.NewIntLit(1)},
		},
	}
}

func TestRenderRule(t *testing.T) {
	out, err := NewRenderer().Rule(powRule())
	require.NoError(t, err)
	require.Equal(t,
		`\frac{expr = pow(x, Lit64(ival)), ival \geq 1}{expr \to mul(x, pow(x, Lit64(ival - 1)))}`,
		out,
	)
}

func TestRenderGuardOrder(t *testing.T) {
	rule := &lang.Rule{
		Head: lang.NewFuncCall("f", []lang.Expr{lang.NewVar("x")}),
		Body: lang.NewVar("x"),
		Guards: []lang.Condition{
			{Left: lang.NewVar("x"), Op: "<=", Right: lang.NewIntLit(10)},
			{Left: lang.NewVar("x"), Op: "!=", Right: lang.NewIntLit(0)},
			{Left: lang.NewVar("x"), Op: ">", Right: lang.NewIntLit(-5)},
		},
	}
	out, err := NewRenderer().Rule(rule)
	require.NoError(t, err)
	require.Equal(t,
		`\frac{expr = f(x), x \leq 10, x \neq 0, x > -5}{expr \to x}`,
		out,
	)
}

func TestRenderUnknownOperator(t *testing.T) {
	rule := &lang.Rule{
		Head: lang.NewFuncCall("f", []lang.Expr{lang.NewVar("x")}),
		Body: lang.NewVar("x"),
		Guards: []lang.Condition{
			{Left: lang.NewVar("x"), Op: "<=>", Right: lang.NewVar("y")},
		},
	}
	out, err := NewRenderer().Rule(rule)
	require.Empty(t, out)
	require.Error(t, err)
	require.IsType(t, &RenderError{}, err)
	require.Contains(t, err.Error(), "<=>")
}

func TestRenderCustomSymbols(t *testing.T) {
	renderer := &Renderer{Symbols: SymbolTable{">=": `\geq`}}
	rule := &lang.Rule{
		Head:   lang.NewFuncCall("f", []lang.Expr{lang.NewVar("x")}),
		Body:   lang.NewBinOp(lang.NewVar("x"), "-", lang.NewIntLit(1)),
		Guards: []lang.Condition{{Left: lang.NewVar("x"), Op: ">=", Right: lang.NewIntLit(1)}},
	}
	// Subtraction is absent from the custom table.
	_, err := renderer.Rule(rule)
	require.IsType(t, &RenderError{}, err)
}

func TestRenderInference(t *testing.T) {
	testCases := []struct {
		in  *lang.Inference
		out string
	}{
		{
			&lang.Inference{
				Premises: []lang.Expr{
					lang.NewBinOp(lang.NewVar("x"), "=", lang.NewFuncCall("Num", []lang.Expr{lang.NewVar("n")})),
					lang.NewBinOp(lang.NewVar("n"), ">=", lang.NewIntLit(0)),
				},
				Conclusions: []lang.Expr{
					lang.NewFuncCall("set", []lang.Expr{
						lang.NewFuncCall("abs", []lang.Expr{lang.NewVar("x")}),
						lang.NewVar("n"),
					}),
				},
			},
			`\frac{\begin{array}{l} x = \text{Num}(n) \\ n \geq 0 \end{array}}{\text{set}(\text{abs}(x), n)}`,
		},
		{
			&lang.Inference{
				Conclusions: []lang.Expr{lang.NewFuncCall("init", nil)},
			},
			`\frac{\text{true}}{\text{init}()}`,
		},
	}

	renderer := NewRenderer()
	renderer.TextIdents = true
	for idx, testCase := range testCases {
		out, err := renderer.Inference(testCase.in)
		require.NoError(t, err, "case %d", idx)
		require.Equal(t, testCase.out, out, "case %d", idx)
	}
}

func TestTextIdents(t *testing.T) {
	renderer := NewRenderer()
	renderer.TextIdents = true
	out, err := renderer.Inference(&lang.Inference{
		Premises:    []lang.Expr{lang.NewVar("fuel_level")},
		Conclusions: []lang.Expr{lang.NewFuncCall("can_run", nil)},
	})
	require.NoError(t, err)
	require.Equal(t, `\frac{\text{fuel\_level}}{\text{can\_run}()}`, out)
}
