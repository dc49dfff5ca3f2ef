package compile

import (
	"testing"

	"github.com/kfly8/barefootjs-sub001/internal/symbols"
)

func TestFileCompilesSingleComponent(t *testing.T) {
	src := []byte(`
function Counter({ label }) {
	const [count, setCount] = createSignal(0);
	return <button onClick={() => setCount(count() + 1)}>{label}: {count()}</button>;
}
`)
	result, err := File(src, "counter.tsx", nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Found {
		t.Fatal("expected a component to be found")
	}
	if result.Root == nil {
		t.Fatal("expected a root IR node")
	}
	if result.Summary == nil || result.Summary.Name != "Counter" {
		t.Fatalf("expected summary for Counter, got %+v", result.Summary)
	}
	if result.SlotCount == 0 {
		t.Error("expected at least one slot id for the button's onClick handler")
	}
}

func TestFileUsesTargetComponentName(t *testing.T) {
	src := []byte(`
function Header() { return <h1>Hi</h1>; }
function Footer() { return <footer>Bye</footer>; }
`)
	result, err := File(src, "page.tsx", nil, Options{TargetComponentName: "Footer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Found || result.Summary.Name != "Footer" {
		t.Fatalf("expected Footer to be compiled, got %+v", result.Summary)
	}
}

func TestFileReturnsComponentTableEntryForSiblingReuse(t *testing.T) {
	src := []byte(`function Badge({ text }) { return <span>{text}</span>; }`)
	result, err := File(src, "badge.tsx", symbols.ComponentTable{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Summary.Props) != 1 || result.Summary.Props[0] != "text" {
		t.Fatalf("expected Props [text], got %v", result.Summary.Props)
	}
}
