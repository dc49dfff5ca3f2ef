package tsxsource

import (
	"strings"
	"testing"

	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/js_scanner"
)

func TestParseFindsPascalCaseFunctionReturningJSX(t *testing.T) {
	src := []byte(`
function Counter({ label }) {
	const [count, setCount] = createSignal(0);
	return <button onClick={() => setCount(count() + 1)}>{label}: {count()}</button>;
}
`)
	prog, err := Parse(src, "counter.tsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Decls) == 0 {
		t.Fatal("expected at least one top-level declaration")
	}
	fn, ok := prog.Decls[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected a FuncDecl, got %T", prog.Decls[0])
	}
	if fn.Name != "Counter" {
		t.Errorf("expected function name Counter, got %q", fn.Name)
	}
	if !js_scanner.IsPascalCase(fn.Name) {
		t.Errorf("expected %q to be recognized as PascalCase", fn.Name)
	}
	if fn.Body == nil || len(fn.Body.Body) == 0 {
		t.Fatal("expected a non-empty function body")
	}
}

func TestCollectSymbolsFindsSignalMemoAndValueProps(t *testing.T) {
	src := []byte(`
function Panel({ title, onClose }) {
	const [open, setOpen] = createSignal(true);
	const label = createMemo(() => title.toUpperCase());
	return <div>{label()}</div>;
}
`)
	signals, memos, valueProps, err := CollectSymbols(src, "panel.tsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(signals) != 1 || signals[0].GetterName != "open" || signals[0].SetterName != "setOpen" {
		t.Errorf("expected one open/setOpen signal, got %+v", signals)
	}
	if len(memos) != 1 || memos[0].GetterName != "label" {
		t.Errorf("expected one label memo, got %+v", memos)
	}
	if !valueProps.Has("title") {
		t.Error("expected title to be collected as a value prop")
	}
	if valueProps.Has("onClose") {
		t.Error("onClose is a callback prop, not a value prop")
	}
}

func TestParseSourceTextRoundTrips(t *testing.T) {
	src := []byte(`function Empty() { return <div />; }`)
	prog, err := Parse(src, "empty.tsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := prog.Decls[0].(*ast.FuncDecl)
	if !strings.Contains(fn.Source(), "function Empty") {
		t.Errorf("expected source text to be preserved, got %q", fn.Source())
	}
}
