package transform

import (
	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/ir"
)

// classifyExpression implements the five-case expression classifier of
// spec.md §4.4.
func classifyExpression(ctx *Context, e ast.Expr) (ir.Node, bool) {
	if e == nil {
		return nil, false
	}
	e = ast.UnwrapParens(e)

	if _, _, ok := isMapCall(e); ok {
		// Left to the element builder to rewrite into list_info on the
		// parent; standing alone (e.g. as an attribute value) it is just a
		// dynamic placeholder carrying the raw source.
		return &ir.Expression{Source: e.Source(), IsDynamic: true}, true
	}

	switch n := e.(type) {
	case *ast.Conditional:
		return buildTernaryConditional(ctx, n), true
	case *ast.Logical:
		if node, ok := buildLogicalConditional(ctx, n); ok {
			return node, true
		}
		return plainExpression(ctx, n), true
	default:
		return plainExpression(ctx, n), true
	}
}

func plainExpression(ctx *Context, e ast.Expr) *ir.Expression {
	source := e.Source()
	dynamic := ctx.IsReactive(source)
	// The identifier `children` alone is always treated as dynamic so lazy
	// children emission survives a plain pass-through (spec.md §4.4).
	if ident, isIdent := e.(*ast.Ident); isIdent && ident.Name == "children" {
		dynamic = true
	}
	return &ir.Expression{Source: source, IsDynamic: dynamic}
}

func buildTernaryConditional(ctx *Context, n *ast.Conditional) *ir.Conditional {
	thenExpr := ast.UnwrapParens(n.Then)
	elseExpr := ast.UnwrapParens(n.Else)

	cond := &ir.Conditional{
		Condition: n.Cond.Source(),
		WhenTrue:  buildConditionalBranch(ctx, thenExpr),
		WhenFalse: buildConditionalBranch(ctx, elseExpr),
	}

	branchIsJSX := isJSXNode(thenExpr) || isJSXNode(elseExpr)
	if ctx.IsReactive(n.Cond.Source()) && (branchIsJSX || isNullLiteral(elseExpr)) {
		id := ctx.NextSlotID()
		cond.SlotID = &id
	}
	return cond
}

func buildConditionalBranch(ctx *Context, e ast.Expr) ir.Node {
	if isJSXNode(e) {
		node, _ := Dispatch(ctx, e)
		return node
	}
	return plainExpression(ctx, e)
}

// buildLogicalConditional handles `L && R` / `L || R` where R is JSX
// (spec.md §4.4 items 3–4). ok is false when R is not JSX, so the caller
// falls back to a plain Expression.
func buildLogicalConditional(ctx *Context, l *ast.Logical) (ir.Node, bool) {
	right := ast.UnwrapParens(l.Right)
	if !isJSXNode(right) {
		return nil, false
	}

	condition := l.Left.Source()
	if l.Op == ast.LogicalOr {
		condition = "!(" + condition + ")"
	}

	whenTrue, _ := Dispatch(ctx, right)
	cond := &ir.Conditional{
		Condition: condition,
		WhenTrue:  whenTrue,
		WhenFalse: &ir.Expression{Source: "null", IsDynamic: false},
	}
	if ctx.IsReactive(l.Left.Source()) {
		id := ctx.NextSlotID()
		cond.SlotID = &id
	}
	return cond, true
}
