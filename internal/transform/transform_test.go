package transform

import (
	"testing"

	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/diag"
	"github.com/kfly8/barefootjs-sub001/internal/ir"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
)

func newCtx(signals []symbols.SignalDecl) *Context {
	return NewContext("Test", signals, nil, nil, nil, diag.NewHandler("", "test.tsx"))
}

func text(v string) *ast.JSXText { return &ast.JSXText{Value: v, Src: v} }

func ident(name string) *ast.Ident { return &ast.Ident{Name: name, Src: name} }

func exprContainer(e ast.Expr) *ast.JSXExprContainer {
	return &ast.JSXExprContainer{Expression: e, Src: "{" + e.Source() + "}"}
}

func strLit(v string) *ast.StringLit { return &ast.StringLit{Value: v, Src: `"` + v + `"`} }

func elem(tag string, attrs []*ast.JSXAttr, children ...ast.Node) *ast.JSXElement {
	return &ast.JSXElement{Tag: tag, Attrs: attrs, Children: children}
}

func selfClosing(tag string, attrs ...*ast.JSXAttr) *ast.JSXElement {
	return &ast.JSXElement{Tag: tag, Attrs: attrs, SelfClosing: true}
}

// S1: plain text.
func TestScenarioPlainText(t *testing.T) {
	ctx := newCtx(nil)
	node, ok := Dispatch(ctx, elem("div", nil, text("Hello World")))
	if !ok {
		t.Fatal("expected IR")
	}
	el := node.(*ir.Element)
	if el.SlotID != nil {
		t.Errorf("expected no slot id, got %v", *el.SlotID)
	}
	if len(el.Children) != 1 {
		t.Fatalf("expected one child, got %d", len(el.Children))
	}
	txt, ok := el.Children[0].(*ir.Text)
	if !ok || txt.Content != "Hello World" {
		t.Errorf("expected Text(\"Hello World\"), got %#v", el.Children[0])
	}
}

// S2: indented multi-line.
func TestScenarioIndentedMultiline(t *testing.T) {
	ctx := newCtx(nil)
	node, _ := Dispatch(ctx, elem("div", nil, text("\n        Hello\n      ")))
	el := node.(*ir.Element)
	if len(el.Children) != 1 {
		t.Fatalf("expected exactly one child (no whitespace noise), got %d: %#v", len(el.Children), el.Children)
	}
	if got := el.Children[0].(*ir.Text).Content; got != "Hello" {
		t.Errorf("expected Text(\"Hello\"), got %q", got)
	}
}

// S3: inline spacing.
func TestScenarioInlineSpacing(t *testing.T) {
	ctx := newCtx(nil)
	node, _ := Dispatch(ctx, elem("div", nil,
		elem("span", nil, text("A")),
		exprContainer(strLit(" ")),
		elem("span", nil, text("B")),
	))
	el := node.(*ir.Element)
	if len(el.Children) != 3 {
		t.Fatalf("expected three children, got %d", len(el.Children))
	}
	if _, ok := el.Children[0].(*ir.Element); !ok {
		t.Errorf("expected first child to be an element")
	}
	expr, ok := el.Children[1].(*ir.Expression)
	if !ok || expr.IsDynamic {
		t.Errorf("expected a static Expression in the middle, got %#v", el.Children[1])
	}
	if _, ok := el.Children[2].(*ir.Element); !ok {
		t.Errorf("expected third child to be an element")
	}
}

// S4: dynamic class.
func TestScenarioDynamicClass(t *testing.T) {
	ctx := newCtx([]symbols.SignalDecl{{GetterName: "isActive", SetterName: "setIsActive", InitialLiteral: "false"}})
	cond := &ast.Conditional{
		Cond: &ast.Call{Callee: ident("isActive"), Src: "isActive()"},
		Then: strLit("active"),
		Else: strLit("inactive"),
		Src:  `isActive() ? "active" : "inactive"`,
	}
	classAttr := &ast.JSXAttr{Kind: ast.AttrNamed, Name: "class", Value: cond, Src: `class={isActive() ? "active" : "inactive"}`}

	node, _ := Dispatch(ctx, elem("div", []*ast.JSXAttr{classAttr}, text("Content")))
	el := node.(*ir.Element)

	if el.SlotID == nil {
		t.Fatal("expected a slot id")
	}
	if len(el.DynamicAttrs) != 1 || el.DynamicAttrs[0].Name != "class" {
		t.Fatalf("expected one dynamic class attribute, got %#v", el.DynamicAttrs)
	}
	if want := `isActive() ? "active" : "inactive"`; el.DynamicAttrs[0].Source != want {
		t.Errorf("expected dynamic attr source %q, got %q", want, el.DynamicAttrs[0].Source)
	}
}

// S5: ternary with JSX branches, dynamic.
func TestScenarioTernaryJSXBranches(t *testing.T) {
	ctx := newCtx([]symbols.SignalDecl{{GetterName: "isActive", SetterName: "setIsActive", InitialLiteral: "false"}})
	cond := &ast.Conditional{
		Cond: &ast.Call{Callee: ident("isActive"), Src: "isActive()"},
		Then: elem("span", nil, text("Active")),
		Else: elem("span", nil, text("Inactive")),
		Src:  "isActive() ? <span>Active</span> : <span>Inactive</span>",
	}
	node, _ := Dispatch(ctx, elem("div", nil, exprContainer(cond)))
	el := node.(*ir.Element)
	if len(el.Children) != 1 {
		t.Fatalf("expected one child, got %d", len(el.Children))
	}
	c, ok := el.Children[0].(*ir.Conditional)
	if !ok {
		t.Fatalf("expected Conditional, got %#v", el.Children[0])
	}
	if c.SlotID == nil {
		t.Error("expected the conditional to receive a slot id")
	}
	if _, ok := c.WhenTrue.(*ir.Element); !ok {
		t.Errorf("expected when_true to be an Element, got %#v", c.WhenTrue)
	}
	if _, ok := c.WhenFalse.(*ir.Element); !ok {
		t.Errorf("expected when_false to be an Element, got %#v", c.WhenFalse)
	}
}

// S6: logical AND.
func TestScenarioLogicalAnd(t *testing.T) {
	tests := []struct {
		name       string
		flagSource ast.Expr
		wantSlotID bool
	}{
		{"reactive flag gets a slot id", &ast.Call{Callee: ident("flag"), Src: "flag()"}, true},
		{"plain identifier flag is static", ident("flag"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newCtx([]symbols.SignalDecl{{GetterName: "flag", SetterName: "setFlag", InitialLiteral: "false"}})
			logical := &ast.Logical{
				Op:    ast.LogicalAnd,
				Left:  tt.flagSource,
				Right: elem("span", nil, text("X")),
				Src:   "flag && <span>X</span>",
			}
			node, _ := Dispatch(ctx, elem("div", nil, exprContainer(logical)))
			el := node.(*ir.Element)
			cond := el.Children[0].(*ir.Conditional)
			if cond.Condition != tt.flagSource.Source() {
				t.Errorf("expected condition %q, got %q", tt.flagSource.Source(), cond.Condition)
			}
			if _, ok := cond.WhenTrue.(*ir.Element); !ok {
				t.Errorf("expected when_true Element, got %#v", cond.WhenTrue)
			}
			falseExpr, ok := cond.WhenFalse.(*ir.Expression)
			if !ok || falseExpr.Source != "null" || falseExpr.IsDynamic {
				t.Errorf("expected when_false Expression(\"null\", static), got %#v", cond.WhenFalse)
			}
			if (cond.SlotID != nil) != tt.wantSlotID {
				t.Errorf("slot id presence = %v, want %v", cond.SlotID != nil, tt.wantSlotID)
			}
		})
	}
}

// S7: index key.
func TestScenarioIndexKey(t *testing.T) {
	ctx := newCtx(nil)
	keyAttr := &ast.JSXAttr{Kind: ast.AttrNamed, Name: "key", Value: ident("index"), Src: "key={index}"}
	li := elem("li", []*ast.JSXAttr{keyAttr}, exprContainer(ident("item")))
	mapCall := &ast.Call{
		Callee: &ast.Member{Object: &ast.Call{Callee: ident("items"), Src: "items()"}, Property: "map", Src: "items().map"},
		Args: []ast.Expr{&ast.Arrow{
			Params: []string{"item", "index"},
			Body:   li,
			Src:    "(item, index) => <li key={index}>{item}</li>",
		}},
		Src: "items().map((item, index) => <li key={index}>{item}</li>)",
	}

	node, _ := Dispatch(ctx, elem("ul", nil, exprContainer(mapCall)))
	el := node.(*ir.Element)

	if el.SlotID == nil {
		t.Fatal("expected the ul element to receive a slot id")
	}
	if len(el.Children) != 0 {
		t.Errorf("expected no regular children once the list is extracted, got %d", len(el.Children))
	}
	if el.ListInfo == nil {
		t.Fatal("expected list_info to be populated")
	}
	if el.ListInfo.KeyExpression != "__index" {
		t.Errorf("expected key_expression __index, got %q", el.ListInfo.KeyExpression)
	}
	if el.ListInfo.ParamName != "item" {
		t.Errorf("expected param_name item, got %q", el.ListInfo.ParamName)
	}
	if el.ListInfo.ArraySource != "items()" {
		t.Errorf("expected array_source items(), got %q", el.ListInfo.ArraySource)
	}
}

// Universal property 3: static purity.
func TestStaticPurityWithNoReactiveSources(t *testing.T) {
	ctx := newCtx(nil)
	node, _ := Dispatch(ctx, elem("div", nil, exprContainer(ident("label"))))
	el := node.(*ir.Element)
	expr := el.Children[0].(*ir.Expression)
	if expr.IsDynamic {
		t.Error("a bare identifier reference must not be dynamic without any declared signals")
	}
	if el.SlotID != nil {
		t.Error("an element with only static content must not receive a slot id")
	}
}

// Universal property 2 / 1: slot-id necessity, density, and order.
func TestSlotIDAssignmentAndOrdering(t *testing.T) {
	ctx := newCtx([]symbols.SignalDecl{{GetterName: "count", SetterName: "setCount", InitialLiteral: "0"}})
	onClick := &ast.JSXAttr{Kind: ast.AttrNamed, Name: "onClick", Value: ident("handleClick"), Src: "onClick={handleClick}"}
	child1 := selfClosing("button", onClick)
	child2 := elem("span", nil, exprContainer(&ast.Call{Callee: ident("count"), Src: "count()"}))

	node, _ := Dispatch(ctx, elem("div", nil, child1, child2))
	el := node.(*ir.Element)

	first := el.Children[0].(*ir.Element)
	second := el.Children[1].(*ir.Element)

	if first.SlotID == nil || *first.SlotID != "0" {
		t.Errorf("expected the button to get slot id 0, got %v", first.SlotID)
	}
	if second.SlotID == nil || *second.SlotID != "1" {
		t.Errorf("expected the span to get slot id 1, got %v", second.SlotID)
	}
	if el.SlotID != nil {
		t.Error("the outer div has no event/attr/list/content trigger and must not get a slot id")
	}
}

// buildChildren: second .map() sibling is downgraded to an opaque expression.
func TestSecondListSiblingIsKeptOpaque(t *testing.T) {
	ctx := newCtx(nil)
	mkMap := func() ast.Expr {
		return &ast.Call{
			Callee: &ast.Member{Object: ident("xs"), Property: "map", Src: "xs.map"},
			Args: []ast.Expr{&ast.Arrow{
				Params: []string{"x"},
				Body:   elem("li", nil),
				Src:    "(x) => <li></li>",
			}},
			Src: "xs.map((x) => <li></li>)",
		}
	}

	node, _ := Dispatch(ctx, elem("div", nil, exprContainer(mkMap()), exprContainer(mkMap())))
	el := node.(*ir.Element)

	if el.ListInfo == nil {
		t.Fatal("expected the first map to become list_info")
	}
	if len(el.Children) != 1 {
		t.Fatalf("expected the second map to survive as one opaque child, got %d", len(el.Children))
	}
	if _, ok := el.Children[0].(*ir.Expression); !ok {
		t.Errorf("expected the second map to remain a generic Expression, got %#v", el.Children[0])
	}
	if !ctx.Handler.HasWarnings() {
		t.Error("expected a warning for the second list sibling")
	}
}

// Entry finder: fallback behavior per spec.md §4.7.
func TestFindEntryFallsBackWhenTargetMissing(t *testing.T) {
	ctx := newCtx(nil)
	other := &ast.FuncDecl{
		Name: "Other",
		Body: &ast.BlockStmt{Body: []ast.Stmt{
			&ast.ReturnStmt{Argument: elem("div", nil, text("fallback"))},
		}},
	}
	program := &ast.Program{Decls: []ast.Node{other}}

	node, ok := FindEntry(ctx, program, "Missing")
	if !ok {
		t.Fatal("expected the fallback component to be returned")
	}
	el := node.(*ir.Element)
	if el.Children[0].(*ir.Text).Content != "fallback" {
		t.Errorf("expected fallback IR, got %#v", node)
	}
}

func TestFindEntryIgnoresLowercaseFunctions(t *testing.T) {
	ctx := newCtx(nil)
	helper := &ast.FuncDecl{
		Name: "helper",
		Body: &ast.BlockStmt{Body: []ast.Stmt{
			&ast.ReturnStmt{Argument: elem("div", nil)},
		}},
	}
	program := &ast.Program{Decls: []ast.Node{helper}}

	if _, ok := FindEntry(ctx, program, ""); ok {
		t.Error("a lowercase-named function must never be treated as a component")
	}
}
