package transform

import (
	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/ir"
	"github.com/kfly8/barefootjs-sub001/internal/js_scanner"
)

// FindEntry implements the entry finder of spec.md §4.7. targetName may be
// empty, meaning "compile the first PascalCase function found".
func FindEntry(ctx *Context, program *ast.Program, targetName string) (ir.Node, bool) {
	var fallbacks []*ast.FuncDecl

	for _, decl := range program.Decls {
		fn, isFunc := decl.(*ast.FuncDecl)
		if !isFunc || !js_scanner.IsPascalCase(fn.Name) {
			continue
		}

		if targetName == "" {
			return dispatchFuncBody(ctx, fn)
		}

		if fn.Name == targetName {
			return dispatchFuncBody(ctx, fn)
		}

		fallbacks = append(fallbacks, fn)
	}

	// Non-matching components are dispatched only once the target is known
	// to be missing, so they never take slot ids or append warnings to a
	// compilation that does find its target.
	for _, fn := range fallbacks {
		if node, found := dispatchFuncBody(ctx, fn); found {
			return node, true
		}
	}
	return nil, false
}

// dispatchFuncBody dispatches the first top-level return statement whose
// argument, after unwrapping parentheses, is JSX.
func dispatchFuncBody(ctx *Context, fn *ast.FuncDecl) (ir.Node, bool) {
	if fn.Body == nil {
		return nil, false
	}
	for _, stmt := range fn.Body.Body {
		ret, isReturn := stmt.(*ast.ReturnStmt)
		if !isReturn || ret.Argument == nil {
			continue
		}
		expr := ast.UnwrapParens(ret.Argument)
		if !isJSXNode(expr) {
			continue
		}
		return Dispatch(ctx, expr)
	}
	return nil, false
}
