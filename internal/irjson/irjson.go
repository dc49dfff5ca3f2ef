// Package irjson dumps an IRNode forest to JSON for inspection and golden
// tests. It is grounded on the teacher's own internal/printer/print-to-json.go
// — a flat, discriminated-by-`type` tree (ASTNode) serialized by hand — but
// targets internal/ir instead of the teacher's HTML AST, and serializes
// through github.com/go-json-experiment/json rather than a hand-rolled
// String() builder: the teacher's manual encoder existed to keep the WASM
// build free of reflection-based encoding/json, a constraint that does not
// apply here.
//
// This is a debug dumper only; it is not one of the two downstream emitters
// spec.md places out of scope (the HTML/string generator and the
// hydration module). It exists so a caller — a test, the MCP tool server,
// or the CLI's `--dump-ir` flag — can see the pass's output without writing
// its own IR walker.
package irjson

import (
	"github.com/go-json-experiment/json"

	"github.com/kfly8/barefootjs-sub001/internal/ir"
)

// Node mirrors one internal/ir.Node value as a JSON-friendly, flat,
// discriminated-union shape. Unset fields are omitted rather than encoded
// as zero values, so one variant's dump stays readable next to another's.
type Node struct {
	Type string `json:"type"`

	// Text
	Content string `json:"content,omitempty"`

	// Expression
	Source    string `json:"source,omitempty"`
	IsDynamic bool   `json:"isDynamic,omitempty"`

	// Element / Fragment / Component
	Tag            string          `json:"tag,omitempty"`
	Name           string          `json:"name,omitempty"`
	SlotID         *string         `json:"slotId,omitempty"`
	StaticAttrs    []Attr          `json:"staticAttrs,omitempty"`
	DynamicAttrs   []DynAttr       `json:"dynamicAttrs,omitempty"`
	SpreadAttrs    []string        `json:"spreadAttrs,omitempty"`
	Ref            *string         `json:"ref,omitempty"`
	Events         []Event         `json:"events,omitempty"`
	Children       []*Node         `json:"children,omitempty"`
	ListInfo       *ListInfo       `json:"listInfo,omitempty"`
	DynamicContent *DynamicContent `json:"dynamicContent,omitempty"`

	// Component only
	Props           []Prop     `json:"props,omitempty"`
	SpreadProps     []string   `json:"spreadProps,omitempty"`
	ChildInit       *ChildInit `json:"childInit,omitempty"`
	HasLazyChildren bool       `json:"hasLazyChildren,omitempty"`

	// Conditional only
	Condition string `json:"condition,omitempty"`
	WhenTrue  *Node  `json:"whenTrue,omitempty"`
	WhenFalse *Node  `json:"whenFalse,omitempty"`
}

type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type DynAttr struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

type Event struct {
	AttrName      string `json:"attrName"`
	EventName     string `json:"eventName"`
	HandlerSource string `json:"handlerSource"`
}

type Prop struct {
	Name      string `json:"name"`
	Source    string `json:"source"`
	IsDynamic bool   `json:"isDynamic"`
}

type ChildInit struct {
	Name              string `json:"name"`
	PropsStructSource string `json:"propsStructSource"`
}

type ListInfo struct {
	ArraySource    string  `json:"arraySource"`
	ParamName      string  `json:"paramName"`
	IndexParamName string  `json:"indexParamName,omitempty"`
	HasKey         bool    `json:"hasKey"`
	KeyExpression  string  `json:"keyExpression,omitempty"`
	ItemIR         *Node   `json:"itemIr,omitempty"`
	ItemTemplate   string  `json:"itemTemplate,omitempty"`
	ItemEvents     []Event `json:"itemEvents,omitempty"`
}

type DynamicContent struct {
	Expression  string `json:"expression"`
	FullContent string `json:"fullContent"`
}

// Marshal converts root to its JSON dump. root may be nil, producing the
// JSON literal `null`.
func Marshal(root ir.Node) ([]byte, error) {
	return json.Marshal(convert(root))
}

func convert(n ir.Node) *Node {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case *ir.Text:
		return &Node{Type: "Text", Content: v.Content}
	case *ir.Expression:
		return &Node{Type: "Expression", Source: v.Source, IsDynamic: v.IsDynamic}
	case *ir.Element:
		return &Node{
			Type:           "Element",
			Tag:            v.Tag,
			SlotID:         v.SlotID,
			StaticAttrs:    convertAttrs(v.StaticAttrs),
			DynamicAttrs:   convertDynAttrs(v.DynamicAttrs),
			SpreadAttrs:    v.SpreadAttrs,
			Ref:            v.Ref,
			Events:         convertEvents(v.Events),
			Children:       convertChildren(v.Children),
			ListInfo:       convertListInfo(v.ListInfo),
			DynamicContent: convertDynamicContent(v.DynamicContent),
		}
	case *ir.Fragment:
		return &Node{Type: "Fragment", Children: convertChildren(v.Children)}
	case *ir.Component:
		return &Node{
			Type:            "Component",
			Name:            v.Name,
			Props:           convertProps(v.Props),
			SpreadProps:     v.SpreadProps,
			Children:        convertChildren(v.Children),
			ChildInit:       convertChildInit(v.ChildInit),
			HasLazyChildren: v.HasLazyChildren,
		}
	case *ir.Conditional:
		return &Node{
			Type:      "Conditional",
			SlotID:    v.SlotID,
			Condition: v.Condition,
			WhenTrue:  convert(v.WhenTrue),
			WhenFalse: convert(v.WhenFalse),
		}
	default:
		return &Node{Type: "Unknown"}
	}
}

func convertChildren(children []ir.Node) []*Node {
	if len(children) == 0 {
		return nil
	}
	out := make([]*Node, len(children))
	for i, c := range children {
		out[i] = convert(c)
	}
	return out
}

func convertAttrs(attrs []ir.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(attrs))
	for i, a := range attrs {
		out[i] = Attr{Name: a.Name, Value: a.Value}
	}
	return out
}

func convertDynAttrs(attrs []ir.DynAttr) []DynAttr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]DynAttr, len(attrs))
	for i, a := range attrs {
		out[i] = DynAttr{Name: a.Name, Source: a.Source}
	}
	return out
}

func convertEvents(events []ir.Event) []Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = Event{AttrName: e.AttrName, EventName: e.EventName, HandlerSource: e.HandlerSource}
	}
	return out
}

func convertProps(props []ir.PropAssign) []Prop {
	if len(props) == 0 {
		return nil
	}
	out := make([]Prop, len(props))
	for i, p := range props {
		out[i] = Prop{Name: p.Name, Source: p.Source, IsDynamic: p.IsDynamic}
	}
	return out
}

func convertChildInit(ci *ir.ChildInit) *ChildInit {
	if ci == nil {
		return nil
	}
	return &ChildInit{Name: ci.Name, PropsStructSource: ci.PropsStructSource}
}

func convertListInfo(li *ir.ListInfo) *ListInfo {
	if li == nil {
		return nil
	}
	return &ListInfo{
		ArraySource:    li.ArraySource,
		ParamName:      li.ParamName,
		IndexParamName: li.IndexParamName,
		HasKey:         li.HasKey,
		KeyExpression:  li.KeyExpression,
		ItemIR:         convert(li.ItemIR),
		ItemTemplate:   li.ItemTemplate,
		ItemEvents:     convertEvents(li.ItemEvents),
	}
}

func convertDynamicContent(dc *ir.DynamicContent) *DynamicContent {
	if dc == nil {
		return nil
	}
	return &DynamicContent{Expression: dc.Expression, FullContent: dc.FullContent}
}
