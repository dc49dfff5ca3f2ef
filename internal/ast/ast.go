// Package ast defines the AST node vocabulary the front-end pass consumes
// (spec.md §6.1): elements, self-closing elements, fragments, text,
// embedded expressions, conditionals, logical binary expressions, arrow
// functions, call expressions, property access, parens, string literals,
// identifiers, function declarations, returns, and JSX attributes, each
// exposing its own source text. Any parser that produces this shape
// suffices — spec.md treats the lexer/parser as an external collaborator,
// so this package is the seam: internal/tsxsource fills it from a real
// tree-sitter parse, and tests build it by hand.
//
// The shape mirrors two things seen in the retrieved examples: the
// vendored typescript-go AST withastro/compiler's own js_scanner/props.go
// walks (a node exposing its Kind plus narrowing accessors), and the
// interface-typed Expr/Stmt sum types in escalier-lang/escalier's
// internal/ast package, which models this exact JSX surface.
package ast

// Node is implemented by every construct the pass dispatches on.
type Node interface {
	// Source returns the node's raw source text, unmodified.
	Source() string
}

// Expr is any JS/TS expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any JS/TS statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the parsed top level of one source file.
type Program struct {
	Decls []Node
}

func (p *Program) Source() string { return "" }

// FuncDecl is a top-level `function Name(...) { ... }` declaration.
type FuncDecl struct {
	Name string
	Body *BlockStmt
	Src  string
}

func (f *FuncDecl) Source() string { return f.Src }

// BlockStmt is a `{ ... }` statement list.
type BlockStmt struct {
	Body []Stmt
	Src  string
}

func (b *BlockStmt) Source() string { return b.Src }
func (b *BlockStmt) stmtNode()      {}

// ReturnStmt is a `return <expr>;` statement. Argument is nil for a bare
// `return;`.
type ReturnStmt struct {
	Argument Expr
	Src      string
}

func (r *ReturnStmt) Source() string { return r.Src }
func (r *ReturnStmt) stmtNode()      {}

// ExprStmt wraps a bare expression statement. The pass never dispatches on
// these directly but FuncDecl bodies may contain them ahead of the return.
type ExprStmt struct {
	Expression Expr
	Src        string
}

func (e *ExprStmt) Source() string { return e.Src }
func (e *ExprStmt) stmtNode()      {}

// Ident is a bare identifier reference, e.g. a prop name or `children`.
type Ident struct {
	Name string
	Src  string
}

func (i *Ident) Source() string { return i.Src }
func (i *Ident) exprNode()      {}

// StringLit is a string literal; Value is the unescaped text between quotes.
type StringLit struct {
	Value string
	Src   string
}

func (s *StringLit) Source() string { return s.Src }
func (s *StringLit) exprNode()      {}

// Paren is a parenthesized expression, `(expr)`.
type Paren struct {
	Expression Expr
	Src        string
}

func (p *Paren) Source() string { return p.Src }
func (p *Paren) exprNode()      {}

// Member is a property-access expression, `object.property`.
type Member struct {
	Object   Expr
	Property string
	Src      string
}

func (m *Member) Source() string { return m.Src }
func (m *Member) exprNode()      {}

// Call is a call expression, `callee(args...)`.
type Call struct {
	Callee Expr
	Args   []Expr
	Src    string
}

func (c *Call) Source() string { return c.Src }
func (c *Call) exprNode()      {}

// Arrow is an arrow function. Body is either an Expr (expression-bodied
// arrow) or a *BlockStmt (block-bodied arrow). The list extractor and the
// expression classifier accept a map callback only when Body, after
// unwrapping parentheses, is a JSX element; a block body is not searched
// for a returned JSX value.
type Arrow struct {
	Params []string
	Body   Node
	Src    string
}

func (a *Arrow) Source() string { return a.Src }
func (a *Arrow) exprNode()      {}

// Conditional is a ternary expression, `cond ? then : else`.
type Conditional struct {
	Cond Expr
	Then Expr
	Else Expr
	Src  string
}

func (c *Conditional) Source() string { return c.Src }
func (c *Conditional) exprNode()      {}

// LogicalOp identifies a Logical expression's operator.
type LogicalOp int

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
)

// Logical is a `left && right` or `left || right` binary expression.
type Logical struct {
	Op    LogicalOp
	Left  Expr
	Right Expr
	Src   string
}

func (l *Logical) Source() string { return l.Src }
func (l *Logical) exprNode()      {}

// JSXAttrKind discriminates the three attribute shapes spec.md §4.3 walks.
type JSXAttrKind int

const (
	// AttrNamed is `name="value"` or `name={expr}` or a bare `name`.
	AttrNamed JSXAttrKind = iota
	// AttrSpread is `{...expr}`.
	AttrSpread
	// AttrShorthand is `{name}`, React's object-shorthand prop syntax.
	AttrShorthand
)

// JSXAttr is one attribute on a JSXElement's opening tag.
type JSXAttr struct {
	Kind JSXAttrKind
	Name string
	// Value is nil for a bare attribute (<input disabled>) and for
	// AttrSpread (use SpreadExpr instead).
	Value Expr
	// IsStringLiteral is true when Value's source was a quoted string
	// rather than a `{expr}` container, per spec.md §4.3's static_attrs rule.
	IsStringLiteral bool
	// SpreadExpr holds the spread expression for AttrSpread attributes.
	SpreadExpr Expr
	Src        string
}

func (a *JSXAttr) Source() string { return a.Src }

// JSXElement is a JSX element or self-closing element. The pass's
// dispatcher table treats "element" and "self-closing element" as the same
// AST shape with an empty Children slice, which SelfClosing records for
// callers that care.
type JSXElement struct {
	Tag         string
	Attrs       []*JSXAttr
	Children    []Node
	SelfClosing bool
	Src         string
}

func (e *JSXElement) Source() string { return e.Src }
func (e *JSXElement) exprNode()      {}

// JSXFragment is the `<>...</>` shorthand, represented distinctly from
// JSXElement so the dispatcher's fragment row (spec.md §4.1) has a node to
// match on. internal/tsxsource turns an explicit
// `<React.Fragment>...</React.Fragment>` into a JSXElement, not a JSXFragment.
type JSXFragment struct {
	Children []Node
	Src      string
}

func (f *JSXFragment) Source() string { return f.Src }
func (f *JSXFragment) exprNode()      {}

// JSXText is a literal text run between JSX tags, before whitespace
// normalization (spec.md §4.2) is applied.
type JSXText struct {
	Value string
	Src   string
}

func (t *JSXText) Source() string { return t.Src }
func (t *JSXText) exprNode()      {}

// JSXExprContainer is an embedded `{expr}` appearing as a JSX child.
type JSXExprContainer struct {
	Expression Expr
	Src        string
}

func (c *JSXExprContainer) Source() string { return c.Src }
func (c *JSXExprContainer) exprNode()      {}

// UnwrapParens recursively strips parenthesized-expression wrappers, per
// the design note that paren-unwrapping must be a tail-recursive helper
// usable wherever an expression is inspected for JSX-ness: ternary
// branches, &&/|| right-hand sides, return statements, and map-callback
// bodies.
func UnwrapParens(e Expr) Expr {
	for {
		p, ok := e.(*Paren)
		if !ok {
			return e
		}
		e = p.Expression
	}
}

// UnwrapParensNode is UnwrapParens for the Node-typed Arrow.Body position,
// where the wrapped value may be a JSX node rather than a general Expr.
func UnwrapParensNode(n Node) Node {
	for {
		p, ok := n.(*Paren)
		if !ok {
			return n
		}
		n = p.Expression
	}
}
