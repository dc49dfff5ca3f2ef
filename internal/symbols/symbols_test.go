package symbols

import "testing"

func TestValuePropSetHas(t *testing.T) {
	set := NewValuePropSet("label", "count")
	if !set.Has("label") {
		t.Error("expected label to be a declared value prop")
	}
	if set.Has("onClick") {
		t.Error("did not expect onClick to be a declared value prop")
	}
}

func TestEmptyValuePropSet(t *testing.T) {
	set := NewValuePropSet()
	if set.Has("anything") {
		t.Error("an empty set must not report any prop as present")
	}
}

func TestComponentTableLookup(t *testing.T) {
	table := ComponentTable{
		"Counter": {Name: "Counter", Props: []string{"initial"}},
	}
	summary, ok := table["Counter"]
	if !ok || summary.Name != "Counter" {
		t.Fatalf("expected to find Counter summary, got %#v, %v", summary, ok)
	}
	if _, ok := table["Missing"]; ok {
		t.Error("did not expect a summary for an undeclared component")
	}
}
