package transform

import (
	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/ir"
	"github.com/kfly8/barefootjs-sub001/internal/loc"
)

// extractList implements the list extractor of spec.md §4.5. ok is false
// when e does not have the `X.map(cb)` shape isMapCall requires.
func extractList(ctx *Context, e ast.Expr) (*ir.ListInfo, bool) {
	member, arrow, ok := isMapCall(e)
	if !ok {
		return nil, false
	}
	body := ast.UnwrapParensNode(arrow.Body).(*ast.JSXElement)

	var paramName, indexParamName string
	if len(arrow.Params) > 0 {
		paramName = arrow.Params[0]
	}
	if len(arrow.Params) > 1 {
		indexParamName = arrow.Params[1]
	}

	info := &ir.ListInfo{
		ArraySource:    member.Object.Source(),
		ParamName:      paramName,
		IndexParamName: indexParamName,
	}

	if keyAttr := findAttr(body.Attrs, "key"); keyAttr != nil && keyAttr.Value != nil {
		keySource := keyAttr.Value.Source()
		info.HasKey = true
		if indexParamName != "" && keySource == indexParamName {
			info.KeyExpression = "__index"
		} else {
			info.KeyExpression = keySource
		}
	} else {
		ctx.Warn(loc.WARNING_LIST_MISSING_KEY, "list item is missing a key attribute", loc.Loc{Start: 0})
	}

	itemCtx := ctx
	if paramName != "" {
		itemCtx = ctx.WithExcludedName(paramName)
	}
	itemIR, _ := Dispatch(itemCtx, body)
	info.ItemIR = itemIR

	template, events := jsxToTemplate(body, paramName, ctx.Components)
	info.ItemTemplate = template
	info.ItemEvents = events

	return info, true
}
