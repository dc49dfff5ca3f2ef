package tsxsource

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/kfly8/barefootjs-sub001/internal/symbols"
)

// CollectSymbols walks a parsed file for the declarations a Context needs
// (spec.md §3.1): `createSignal`/`createMemo` bindings and a component
// function's destructured prop names. It is a best-effort extractor in the
// same spirit as uispec's pkg/scanner/props.go and pkg/extractor/symbol.go
// — pattern-match the handful of shapes real components use rather than a
// full type-checker.
func CollectSymbols(source []byte, filename string) (signals []symbols.SignalDecl, memos []symbols.MemoDecl, valueProps symbols.ValuePropSet, err error) {
	parser := ts.NewParser()
	if parser == nil {
		return nil, nil, nil, errParserUnavailable(filename)
	}
	defer parser.Close()

	lang := ts.NewLanguage(tsxLanguagePointer())
	if err := parser.SetLanguage(lang); err != nil {
		return nil, nil, nil, err
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, nil, nil, errParserUnavailable(filename)
	}
	defer tree.Close()

	c := &converter{source: source}
	root := tree.RootNode()
	walkForDeclarations(c, root, &signals, &memos)
	valueProps = collectValueProps(c, root)
	return signals, memos, valueProps, nil
}

// walkForDeclarations recurses through the whole tree (signals/memos may be
// declared at module scope or inside a component body) looking for
// `lexical_declaration` nodes shaped like the two patterns the front-end
// pass's reactivity predicate cares about (spec.md §3.1, §9).
func walkForDeclarations(c *converter, n *ts.Node, signals *[]symbols.SignalDecl, memos *[]symbols.MemoDecl) {
	if n == nil {
		return
	}
	if n.Kind() == "lexical_declaration" {
		for i := uint(0); i < uint(n.ChildCount()); i++ {
			declarator := n.Child(i)
			if declarator.Kind() != "variable_declarator" {
				continue
			}
			tryCollectSignal(c, declarator, signals)
			tryCollectMemo(c, declarator, memos)
		}
	}
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		walkForDeclarations(c, n.Child(i), signals, memos)
	}
}

// tryCollectSignal matches `const [get, set] = createSignal(initial)`.
func tryCollectSignal(c *converter, declarator *ts.Node, signals *[]symbols.SignalDecl) {
	name := declarator.ChildByFieldName("name")
	value := declarator.ChildByFieldName("value")
	if name == nil || value == nil || name.Kind() != "array_pattern" {
		return
	}
	if value.Kind() != "call_expression" {
		return
	}
	callee := value.ChildByFieldName("function")
	if callee == nil || c.text(callee) != "createSignal" {
		return
	}
	var getter, setter string
	idx := 0
	for i := uint(0); i < uint(name.ChildCount()); i++ {
		el := name.Child(i)
		if el.Kind() != "identifier" {
			continue
		}
		if idx == 0 {
			getter = c.text(el)
		} else if idx == 1 {
			setter = c.text(el)
		}
		idx++
	}
	if getter == "" || setter == "" {
		return
	}
	initial := ""
	if args := value.ChildByFieldName("arguments"); args != nil {
		if first := firstSignificantChild(args); first != nil {
			initial = c.text(first)
		}
	}
	*signals = append(*signals, symbols.SignalDecl{
		GetterName:     getter,
		SetterName:     setter,
		InitialLiteral: initial,
	})
}

// tryCollectMemo matches `const get = createMemo(() => ...)`.
func tryCollectMemo(c *converter, declarator *ts.Node, memos *[]symbols.MemoDecl) {
	name := declarator.ChildByFieldName("name")
	value := declarator.ChildByFieldName("value")
	if name == nil || value == nil || name.Kind() != "identifier" {
		return
	}
	if value.Kind() != "call_expression" {
		return
	}
	callee := value.ChildByFieldName("function")
	if callee == nil || c.text(callee) != "createMemo" {
		return
	}
	computation := ""
	if args := value.ChildByFieldName("arguments"); args != nil {
		if first := firstSignificantChild(args); first != nil {
			computation = c.text(first)
		}
	}
	*memos = append(*memos, symbols.MemoDecl{
		GetterName:        c.text(name),
		ComputationSource: computation,
	})
}

// collectValueProps finds the first function declaration's destructured
// parameter object, e.g. `function Counter({ label, onReset })`, and treats
// every destructured name as a value prop unless it's a known non-value
// name (children, or an onX handler as looksLikeEventHandlerName detects).
func collectValueProps(c *converter, root *ts.Node) symbols.ValuePropSet {
	fn := findFirstFunctionDecl(root)
	if fn == nil {
		return symbols.NewValuePropSet()
	}
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return symbols.NewValuePropSet()
	}
	var names []string
	for i := uint(0); i < uint(params.ChildCount()); i++ {
		p := params.Child(i)
		pattern := p
		if p.Kind() == "required_parameter" || p.Kind() == "optional_parameter" {
			if pat := p.ChildByFieldName("pattern"); pat != nil {
				pattern = pat
			}
		}
		if pattern.Kind() != "object_pattern" {
			continue
		}
		for j := uint(0); j < uint(pattern.ChildCount()); j++ {
			prop := pattern.Child(j)
			switch prop.Kind() {
			case "shorthand_property_identifier_pattern", "identifier":
				name := c.text(prop)
				if name != "children" && !looksLikeEventHandlerName(name) {
					names = append(names, name)
				}
			case "pair_pattern":
				if keyNode := prop.ChildByFieldName("key"); keyNode != nil {
					name := c.text(keyNode)
					if name != "children" && !looksLikeEventHandlerName(name) {
						names = append(names, name)
					}
				}
			}
		}
	}
	return symbols.NewValuePropSet(names...)
}

// looksLikeEventHandlerName reports whether name has the `onX` shape
// components use for callback props (onClick, onReset): these are function
// props, not value props, so the reactivity predicate must not treat a
// call site passing one as a plain value (spec.md §3.1).
func looksLikeEventHandlerName(name string) bool {
	if len(name) < 3 || name[0] != 'o' || name[1] != 'n' {
		return false
	}
	r := rune(name[2])
	return r >= 'A' && r <= 'Z'
}

func findFirstFunctionDecl(n *ts.Node) *ts.Node {
	if n == nil {
		return nil
	}
	if n.Kind() == "function_declaration" {
		return n
	}
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		if found := findFirstFunctionDecl(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}
