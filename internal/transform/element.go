package transform

import (
	"strings"

	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/ir"
	"github.com/kfly8/barefootjs-sub001/internal/loc"
)

// buildElement implements the element builder of spec.md §4.3 for both
// elements and self-closing elements (which simply carry no children).
func buildElement(ctx *Context, el *ast.JSXElement) *ir.Element {
	out := &ir.Element{Tag: el.Tag}
	classifyAttrs(ctx, el.Attrs, out)

	children, listInfo := buildChildren(ctx, el.Children)
	out.Children = children
	out.ListInfo = listInfo
	out.DynamicContent = computeDynamicContent(ctx, children)

	if needsSlotID(out) {
		id := ctx.NextSlotID()
		out.SlotID = &id
	}
	return out
}

func buildFragment(ctx *Context, f *ast.JSXFragment) *ir.Fragment {
	var children []ir.Node
	for _, raw := range f.Children {
		if node, ok := Dispatch(ctx, raw); ok {
			children = append(children, node)
		}
	}
	return &ir.Fragment{Children: children}
}

// classifyAttrs walks attrs once, sorting each into the element's spread,
// ref, events, dynamic_attrs, or static_attrs buckets (spec.md §4.3).
func classifyAttrs(ctx *Context, attrs []*ast.JSXAttr, out *ir.Element) {
	for _, a := range attrs {
		switch a.Kind {
		case ast.AttrSpread:
			out.SpreadAttrs = append(out.SpreadAttrs, a.SpreadExpr.Source())
			continue
		case ast.AttrShorthand:
			classifyShorthandAttr(ctx, a, out)
			continue
		}

		if a.Name == "key" {
			continue
		}
		if a.Name == "ref" && a.Value != nil && !a.IsStringLiteral {
			ref := a.Value.Source()
			out.Ref = &ref
			continue
		}
		if strings.HasPrefix(a.Name, "on") && a.Value != nil && !a.IsStringLiteral {
			out.Events = append(out.Events, ir.Event{
				AttrName:      a.Name,
				EventName:     eventNameFromAttr(a.Name),
				HandlerSource: a.Value.Source(),
			})
			continue
		}
		if a.Value == nil {
			out.StaticAttrs = append(out.StaticAttrs, ir.Attr{Name: a.Name, Value: ""})
			continue
		}
		if !a.IsStringLiteral {
			source := a.Value.Source()
			if dynamicAttrTargets[a.Name] || ctx.IsReactive(source) {
				out.DynamicAttrs = append(out.DynamicAttrs, ir.DynAttr{Name: a.Name, Source: source})
				continue
			}
		}
		out.StaticAttrs = append(out.StaticAttrs, ir.Attr{Name: a.Name, Value: attrValueSource(a)})
	}
}

func classifyShorthandAttr(ctx *Context, a *ast.JSXAttr, out *ir.Element) {
	source := a.Name
	if dynamicAttrTargets[a.Name] || ctx.IsReactive(source) {
		out.DynamicAttrs = append(out.DynamicAttrs, ir.DynAttr{Name: a.Name, Source: source})
		return
	}
	out.StaticAttrs = append(out.StaticAttrs, ir.Attr{Name: a.Name, Value: source})
}

// buildChildren dispatches every raw child, diverting the first `.map()`
// expression it finds into list_info instead of the returned slice
// (spec.md §4.3 child processing, §4.7 item: "at most one list per
// element").
func buildChildren(ctx *Context, rawChildren []ast.Node) ([]ir.Node, *ir.ListInfo) {
	var children []ir.Node
	var listInfo *ir.ListInfo

	for _, raw := range rawChildren {
		if container, isContainer := raw.(*ast.JSXExprContainer); isContainer {
			if _, _, isList := isMapCall(container.Expression); isList {
				if listInfo == nil {
					if info, extracted := extractList(ctx, container.Expression); extracted {
						listInfo = info
						continue
					}
				} else {
					ctx.Warn(loc.WARNING_MULTIPLE_LIST_SIBLINGS,
						"more than one list expression found among element children; only the first becomes list_info",
						loc.Loc{Start: 0})
				}
			}
		}
		if node, ok := Dispatch(ctx, raw); ok {
			children = append(children, node)
		}
	}
	return children, listInfo
}

func needsSlotID(el *ir.Element) bool {
	return len(el.Events) > 0 ||
		len(el.DynamicAttrs) > 0 ||
		el.Ref != nil ||
		el.ListInfo != nil ||
		el.DynamicContent != nil
}

// computeDynamicContent builds the dynamic_content descriptor of spec.md
// §4.3 from an element's already-built children.
func computeDynamicContent(ctx *Context, children []ir.Node) *ir.DynamicContent {
	trigger := ""
	for _, c := range children {
		if src, ok := dynamicTriggerSource(ctx, c); ok {
			trigger = src
			break
		}
	}
	if trigger == "" {
		return nil
	}

	if len(children) == 1 {
		if expr, ok := children[0].(*ir.Expression); ok && expr.IsDynamic {
			return &ir.DynamicContent{Expression: trigger, FullContent: expr.Source}
		}
	}

	parts := make([]string, 0, len(children))
	for _, c := range children {
		switch n := c.(type) {
		case *ir.Text:
			parts = append(parts, `"<text>"`)
		case *ir.Expression:
			parts = append(parts, "String("+n.Source+")")
		case *ir.Conditional:
			parts = append(parts, "String("+reconstructTernary(n)+")")
		}
	}
	return &ir.DynamicContent{Expression: trigger, FullContent: strings.Join(parts, " + ")}
}

// dynamicTriggerSource reports the source expression that makes c count as
// dynamic text, per the two cases of spec.md §4.3.
func dynamicTriggerSource(ctx *Context, n ir.Node) (string, bool) {
	switch v := n.(type) {
	case *ir.Expression:
		if v.IsDynamic {
			return v.Source, true
		}
	case *ir.Conditional:
		if v.SlotID == nil && isTextualExpression(v.WhenTrue) && isTextualExpression(v.WhenFalse) && ctx.IsReactive(v.Condition) {
			return v.Condition, true
		}
	}
	return "", false
}

func isTextualExpression(n ir.Node) bool {
	_, ok := n.(*ir.Expression)
	return ok
}

func reconstructTernary(c *ir.Conditional) string {
	return c.Condition + " ? " + sourceOf(c.WhenTrue) + " : " + sourceOf(c.WhenFalse)
}

func sourceOf(n ir.Node) string {
	switch v := n.(type) {
	case *ir.Expression:
		return v.Source
	case *ir.Text:
		return v.Content
	default:
		return ""
	}
}
