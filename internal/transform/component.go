package transform

import (
	"strings"

	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/ir"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
)

// buildComponent implements the component call builder of spec.md §4.6.
func buildComponent(ctx *Context, el *ast.JSXElement, summary *symbols.ComponentSummary) *ir.Component {
	out := &ir.Component{Name: el.Tag}

	for _, a := range el.Attrs {
		switch a.Kind {
		case ast.AttrSpread:
			out.SpreadProps = append(out.SpreadProps, a.SpreadExpr.Source())
		case ast.AttrShorthand:
			out.Props = append(out.Props, ir.PropAssign{
				Name: a.Name, Source: a.Name, IsDynamic: ctx.IsReactive(a.Name),
			})
		default:
			if a.Name == "key" {
				continue
			}
			out.Props = append(out.Props, buildPropAssign(ctx, a))
		}
	}

	for _, raw := range el.Children {
		node, ok := Dispatch(ctx, raw)
		if !ok {
			continue
		}
		out.Children = append(out.Children, node)
		if isDynamicExpr(node) {
			out.HasLazyChildren = true
		}
	}

	out.ChildInit = buildChildInit(summary, out.Props)
	return out
}

// buildPropAssign classifies one named prop, minus the events/ref/dynamic-
// target-set logic elements get: a component prop is dynamic purely by
// whether its value expression is reactive (spec.md §4.6).
func buildPropAssign(ctx *Context, a *ast.JSXAttr) ir.PropAssign {
	if a.Value == nil {
		// Boolean-shorthand prop: `<Toggle checked />`.
		return ir.PropAssign{Name: a.Name, Source: "true", IsDynamic: false}
	}
	if a.IsStringLiteral {
		if lit, ok := a.Value.(*ast.StringLit); ok {
			return ir.PropAssign{Name: a.Name, Source: `"` + lit.Value + `"`, IsDynamic: false}
		}
	}
	source := a.Value.Source()
	return ir.PropAssign{Name: a.Name, Source: source, IsDynamic: ctx.IsReactive(source)}
}

func isDynamicExpr(n ir.Node) bool {
	expr, ok := n.(*ir.Expression)
	return ok && expr.IsDynamic
}

// buildChildInit synthesizes the record literal of spec.md §3.3 invariant
// 5: present iff the component declares props and the call site supplies
// at least one.
func buildChildInit(summary *symbols.ComponentSummary, props []ir.PropAssign) *ir.ChildInit {
	if summary == nil || len(summary.Props) == 0 || len(props) == 0 {
		return nil
	}
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.Name+": "+p.Source)
	}
	return &ir.ChildInit{Name: summary.Name, PropsStructSource: "{ " + strings.Join(parts, ", ") + " }"}
}
