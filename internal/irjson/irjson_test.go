package irjson

import (
	"strings"
	"testing"

	"github.com/kfly8/barefootjs-sub001/internal/ir"
)

func TestMarshalElementWithSlotID(t *testing.T) {
	id := "0"
	el := &ir.Element{
		Tag:    "button",
		SlotID: &id,
		Events: []ir.Event{{AttrName: "onClick", EventName: "click", HandlerSource: "handleClick"}},
		Children: []ir.Node{
			&ir.Text{Content: "Click me"},
		},
	}

	out, err := Marshal(el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)
	for _, want := range []string{`"type":"Element"`, `"tag":"button"`, `"slotId":"0"`, `"type":"Text"`, `"content":"Click me"`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %s", want, got)
		}
	}
}

func TestMarshalNilRootIsNull(t *testing.T) {
	out, err := Marshal(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("expected null for a nil root, got %s", out)
	}
}

func TestMarshalConditionalWithoutSlotID(t *testing.T) {
	cond := &ir.Conditional{
		Condition: "flag",
		WhenTrue:  &ir.Expression{Source: "\"yes\"", IsDynamic: false},
		WhenFalse: &ir.Expression{Source: "\"no\"", IsDynamic: false},
	}
	out, err := Marshal(cond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)
	if strings.Contains(got, `"slotId"`) {
		t.Errorf("a conditional with no slot id must omit the field entirely, got %s", got)
	}
}
