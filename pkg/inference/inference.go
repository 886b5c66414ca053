// Package inference converts egglog rewrite rules to LaTeX inference
// rules, for display by math-typesetting widgets in interactive documents.
package inference

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/swap357/egglog-latex/pkg/lang"
	"github.com/swap357/egglog-latex/pkg/latex"
	"github.com/swap357/egglog-latex/pkg/parse"
)

// ToLatex converts an egglog rule to a LaTeX inference rule. Both
// notations are accepted: the binding-style
// `rewrite(head).to(body, guards...)` and the native s-expression forms
// `(rewrite lhs rhs)` and `(rule (premises...) (conclusions...))`.
// S-expression input may hold several rules; each becomes its own block,
// labelled `% Rule N`.
func ToLatex(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	switch {
	case strings.HasPrefix(trimmed, "("):
		nodes, err := parse.ParseSExprRules(trimmed)
		if err != nil {
			return "", err
		}
		return renderNodes(nodes)
	case strings.HasPrefix(trimmed, "rewrite"):
		rule, err := parse.Parse(trimmed)
		if err != nil {
			return "", err
		}
		return latex.NewRenderer().Rule(rule)
	default:
		return "", &parse.ParseError{
			Segment: trimmed,
			Message: "expected a rewrite(...) rule or an s-expression",
		}
	}
}

func renderNodes(nodes []lang.Node) (string, error) {
	renderer := latex.NewRenderer()
	renderer.TextIdents = true
	if len(nodes) == 1 {
		return renderer.Node(nodes[0])
	}
	blocks := make([]string, len(nodes))
	for idx, node := range nodes {
		block, err := renderer.Node(node)
		if err != nil {
			return "", errors.Wrapf(err, "rule %d", idx+1)
		}
		blocks[idx] = fmt.Sprintf("%% Rule %d\n%s", idx+1, block)
	}
	return strings.Join(blocks, "\n\n"), nil
}
