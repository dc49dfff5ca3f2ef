// Package ir defines the IR node taxonomy the front-end pass produces
// (spec.md §3.2): a tagged-variant sum type over dynamic dispatch, per the
// teacher's own design-notes preference (spec.md §9) — a plain interface
// marker method plus pattern matching by type switch in consumers, rather
// than any `isXxx()` dynamic-check vocabulary.
package ir

// Node is implemented by every IR variant. IRNode trees are finite, acyclic,
// and owned top-down by their parent (spec.md §3.3 invariant 7); values are
// built once by internal/transform and never mutated afterwards.
type Node interface {
	irNode()
}

// Text is a literal text chunk emitted verbatim.
type Text struct {
	Content string
}

func (*Text) irNode() {}

// Expression represents `{expr}` where expr is neither a list nor a
// conditional with JSX.
type Expression struct {
	Source    string
	IsDynamic bool
}

func (*Expression) irNode() {}

// Attr is one static attribute, name/value already resolved to its final
// string form (spec.md §4.3: literal string value, or an expression's
// source text when the attribute held `{expr}`).
type Attr struct {
	Name  string
	Value string
}

// DynAttr is one attribute whose value must be re-evaluated on change.
type DynAttr struct {
	Name   string
	Source string
}

// Event is one `onX={handler}` attribute lowered to its DOM event name.
type Event struct {
	AttrName      string
	EventName     string
	HandlerSource string
}

// ListInfo is the metadata the List Extractor pulls out of a `.map()`
// expression in an element's children (spec.md §3.2, §4.5).
type ListInfo struct {
	ArraySource    string
	ParamName      string
	IndexParamName string // "" when the callback takes only one parameter
	HasKey         bool
	// KeyExpression is the literal sentinel "__index" when the key
	// expression is exactly the index parameter, else the key
	// expression's own source text (spec.md §4.5.3). Only meaningful
	// when HasKey is true.
	KeyExpression string
	// ItemIR is nil only when the map body failed to produce IR despite
	// passing the List Extractor's shape check — callers should not
	// expect this in practice, since spec.md §4.5.1 already rejects
	// non-JSX bodies before ItemIR is ever built.
	ItemIR       Node
	ItemTemplate string
	ItemEvents   []Event
}

// DynamicContent is computed for an element whose surviving children
// include at least one dynamic text part (spec.md §4.3).
type DynamicContent struct {
	Expression  string
	FullContent string
}

// Element is an HTML element or self-closing tag.
type Element struct {
	Tag string
	// SlotID is nil when the element needs no client-side binding
	// (spec.md §3.3 invariant 1).
	SlotID         *string
	StaticAttrs    []Attr
	DynamicAttrs   []DynAttr
	SpreadAttrs    []string
	Ref            *string
	Events         []Event
	Children       []Node
	ListInfo       *ListInfo
	DynamicContent *DynamicContent
}

func (*Element) irNode() {}

// Fragment has no slot id and no attributes (spec.md §3.2).
type Fragment struct {
	Children []Node
}

func (*Fragment) irNode() {}

// PropAssign is one named prop supplied at a component call site.
type PropAssign struct {
	Name      string
	Source    string
	IsDynamic bool
}

// ChildInit carries the synthesized record-literal source enumerating the
// props a component call site actually supplied (spec.md §3.3 invariant 5).
type ChildInit struct {
	Name              string
	PropsStructSource string
}

// Component is a reference to a previously compiled component.
type Component struct {
	Name            string
	Props           []PropAssign
	SpreadProps     []string
	Children        []Node
	ChildInit       *ChildInit
	HasLazyChildren bool
}

func (*Component) irNode() {}

// Conditional normalizes a ternary or a JSX-valued `&&`/`||` expression.
type Conditional struct {
	// SlotID is nil unless the condition is reactive and at least one
	// branch is JSX, or the false branch is the short-circuit canonical
	// `null` (spec.md §4.4.2).
	SlotID    *string
	Condition string
	WhenTrue  Node
	WhenFalse Node
}

func (*Conditional) irNode() {}
