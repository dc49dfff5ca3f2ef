package transform

import (
	"strings"

	"github.com/kfly8/barefootjs-sub001/internal/ast"
)

// dynamicAttrTargets is the fixed dynamic-attribute-target set of spec.md
// §4.3(b): an attribute name in this set always lands in dynamic_attrs when
// initialized by {expr}, independent of whether expr is itself reactive.
var dynamicAttrTargets = map[string]bool{
	"class": true, "className": true, "style": true, "disabled": true,
	"value": true, "checked": true, "hidden": true, "data-key": true,
}

func findAttr(attrs []*ast.JSXAttr, name string) *ast.JSXAttr {
	for _, a := range attrs {
		if a.Kind == ast.AttrNamed && a.Name == name {
			return a
		}
	}
	return nil
}

// attrValueSource returns the final string value for a static attribute:
// string-literal initializers use the raw unquoted value, {expr}
// initializers use the expression's source text (spec.md §4.3).
func attrValueSource(a *ast.JSXAttr) string {
	if a.Value == nil {
		return ""
	}
	if a.IsStringLiteral {
		if lit, ok := a.Value.(*ast.StringLit); ok {
			return lit.Value
		}
	}
	return a.Value.Source()
}

func eventNameFromAttr(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, "on"))
}

func isJSXNode(n ast.Node) bool {
	switch n.(type) {
	case *ast.JSXElement, *ast.JSXFragment:
		return true
	default:
		return false
	}
}

func isNullLiteral(e ast.Expr) bool {
	return e != nil && e.Source() == "null"
}

// isMapCall reports whether e has the shape `X.map(cb)` where cb is an
// arrow function whose body, after unwrapping parentheses, is a JSX element
// or self-closing element (spec.md §4.4 item 1, §4.5 item 1).
func isMapCall(e ast.Expr) (member *ast.Member, arrow *ast.Arrow, ok bool) {
	if e == nil {
		return nil, nil, false
	}
	call, isCall := ast.UnwrapParens(e).(*ast.Call)
	if !isCall || len(call.Args) == 0 {
		return nil, nil, false
	}
	member, isMember := call.Callee.(*ast.Member)
	if !isMember || member.Property != "map" {
		return nil, nil, false
	}
	arrow, isArrow := call.Args[0].(*ast.Arrow)
	if !isArrow {
		return nil, nil, false
	}
	if _, isJSX := ast.UnwrapParensNode(arrow.Body).(*ast.JSXElement); !isJSX {
		return nil, nil, false
	}
	return member, arrow, true
}
