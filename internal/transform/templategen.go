package transform

import (
	"strings"

	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/ir"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
)

// jsxToTemplate stands in for the template generator collaborator of
// spec.md §6.1: `jsx_to_template(body, source_file, param_name,
// components) -> (template_string, events)`. Its grammar is explicitly out
// of scope for the front-end pass, which treats the output opaquely — this
// is a minimal, plausible implementation so the list extractor has
// something concrete to call, not a faithful reproduction of any
// particular downstream renderer.
func jsxToTemplate(body *ast.JSXElement, paramName string, components symbols.ComponentTable) (string, []ir.Event) {
	var events []ir.Event
	template := renderTemplateNode(body, components, &events)
	return template, events
}

func renderTemplateNode(n ast.Node, components symbols.ComponentTable, events *[]ir.Event) string {
	switch v := n.(type) {
	case *ast.JSXText:
		text, ok := normalizeText(v.Value)
		if !ok {
			return ""
		}
		return text
	case *ast.JSXExprContainer:
		return "{{" + v.Expression.Source() + "}}"
	case *ast.JSXFragment:
		var b strings.Builder
		for _, c := range v.Children {
			b.WriteString(renderTemplateNode(c, components, events))
		}
		return b.String()
	case *ast.JSXElement:
		return renderTemplateElement(v, components, events)
	default:
		return ""
	}
}

func renderTemplateElement(el *ast.JSXElement, components symbols.ComponentTable, events *[]ir.Event) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(el.Tag)

	for _, a := range el.Attrs {
		switch {
		case a.Kind != ast.AttrNamed || a.Name == "key":
			continue
		case strings.HasPrefix(a.Name, "on") && a.Value != nil && !a.IsStringLiteral:
			*events = append(*events, ir.Event{
				AttrName:      a.Name,
				EventName:     eventNameFromAttr(a.Name),
				HandlerSource: a.Value.Source(),
			})
		case a.Value == nil:
			b.WriteString(" " + a.Name)
		default:
			b.WriteString(" " + a.Name + "=\"" + attrValueSource(a) + "\"")
		}
	}

	if el.SelfClosing {
		b.WriteString(" />")
		return b.String()
	}
	b.WriteString(">")
	for _, c := range el.Children {
		b.WriteString(renderTemplateNode(c, components, events))
	}
	b.WriteString("</")
	b.WriteString(el.Tag)
	b.WriteString(">")
	return b.String()
}
