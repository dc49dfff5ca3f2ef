package ast

import "testing"

func TestUnwrapParensStripsNestedParens(t *testing.T) {
	inner := &Ident{Name: "x", Src: "x"}
	wrapped := &Paren{Expression: &Paren{Expression: inner, Src: "(x)"}, Src: "((x))"}

	got := UnwrapParens(wrapped)
	if got != Expr(inner) {
		t.Fatalf("expected innermost identifier, got %#v", got)
	}
}

func TestUnwrapParensPassesThroughNonParen(t *testing.T) {
	inner := &Ident{Name: "x", Src: "x"}
	if UnwrapParens(inner) != Expr(inner) {
		t.Fatalf("expected identity for non-paren expression")
	}
}

func TestUnwrapParensNodeHandlesJSX(t *testing.T) {
	el := &JSXElement{Tag: "div", Src: "<div/>", SelfClosing: true}
	wrapped := &Paren{Expression: el, Src: "(<div/>)"}

	got := UnwrapParensNode(wrapped)
	if got != Node(el) {
		t.Fatalf("expected the wrapped JSX element, got %#v", got)
	}
}
