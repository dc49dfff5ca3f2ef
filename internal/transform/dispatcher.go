package transform

import (
	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/ir"
	"github.com/kfly8/barefootjs-sub001/internal/js_scanner"
)

// Dispatch classifies node and routes it to the matching builder (spec.md
// §4.1). ok is false for nodes that contribute no IR, such as a
// whitespace-only text chunk normalizeText discards.
func Dispatch(ctx *Context, node ast.Node) (ir.Node, bool) {
	switch n := node.(type) {
	case *ast.JSXElement:
		if js_scanner.IsPascalCase(n.Tag) {
			if summary, found := ctx.Components[n.Tag]; found {
				return buildComponent(ctx, n, summary), true
			}
		}
		return buildElement(ctx, n), true
	case *ast.JSXFragment:
		return buildFragment(ctx, n), true
	case *ast.JSXText:
		text, ok := normalizeText(n.Value)
		if !ok {
			return nil, false
		}
		return &ir.Text{Content: text}, true
	case *ast.JSXExprContainer:
		return classifyExpression(ctx, n.Expression)
	default:
		return nil, false
	}
}
