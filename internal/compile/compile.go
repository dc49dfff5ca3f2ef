// Package compile ties internal/tsxsource's parser and symbol collector
// together with the internal/transform front-end pass into one per-file
// compilation step. It is the orchestration layer internal/pipeline,
// internal/mcpserver, and cmd/jsxc's compile and watch commands all call
// instead of each re-deriving the parse → collect-symbols → FindEntry
// sequence themselves.
//
// It is grounded on gnana997/uispec's pkg/extractor.ExtractFile: "parse a
// file once, hand back everything downstream callers need" is the same job,
// retargeted from symbol/import/export extraction to IR compilation.
package compile

import (
	"fmt"
	"sort"

	"github.com/kfly8/barefootjs-sub001/internal/ast"
	"github.com/kfly8/barefootjs-sub001/internal/diag"
	"github.com/kfly8/barefootjs-sub001/internal/ir"
	"github.com/kfly8/barefootjs-sub001/internal/js_scanner"
	"github.com/kfly8/barefootjs-sub001/internal/loc"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
	"github.com/kfly8/barefootjs-sub001/internal/transform"
	"github.com/kfly8/barefootjs-sub001/internal/tsxsource"
)

// Options configures one call to File.
type Options struct {
	// TargetComponentName selects which PascalCase component to compile, per
	// spec.md §4.7. Empty means "the first PascalCase function found".
	TargetComponentName string
}

// Result is everything one compiled file produces.
type Result struct {
	Filename  string
	Root      ir.Node
	Found     bool
	Warnings  []loc.DiagnosticMessage
	SlotCount int
	// Summary is non-nil iff Found, and is the ComponentSummary a caller
	// compiling a later file should add to its symbols.ComponentTable so
	// sibling components can reference this one (spec.md §3.1).
	Summary *symbols.ComponentSummary
}

// File parses source, collects its signals/memos/value-props, and runs the
// front-end pass, given the table of already-compiled components (so this
// file's JSX can reference them as Component nodes rather than plain
// elements — spec.md §4.1's routing table).
func File(source []byte, filename string, components symbols.ComponentTable, opts Options) (*Result, error) {
	program, err := tsxsource.Parse(source, filename)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", filename, err)
	}
	signals, memos, valueProps, err := tsxsource.CollectSymbols(source, filename)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", filename, err)
	}

	name := opts.TargetComponentName
	if name == "" {
		name = firstPascalCaseFuncName(program)
	}

	handler := diag.NewHandler(string(source), filename)
	ctx := transform.NewContext(name, signals, memos, components, valueProps, handler)
	root, found := transform.FindEntry(ctx, program, opts.TargetComponentName)

	result := &Result{
		Filename:  filename,
		Root:      root,
		Found:     found,
		Warnings:  handler.Warnings(),
		SlotCount: ctx.SlotCount(),
	}
	if found {
		result.Summary = &symbols.ComponentSummary{
			Name:    name,
			Signals: signals,
			Props:   sortedPropNames(valueProps),
		}
	}
	return result, nil
}

// firstPascalCaseFuncName finds the name entry.FindEntry would fall back to
// when no target is given, so Result.Summary.Name always reflects the
// component that was actually compiled rather than an empty string.
func firstPascalCaseFuncName(program *ast.Program) string {
	for _, decl := range program.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && js_scanner.IsPascalCase(fn.Name) {
			return fn.Name
		}
	}
	return ""
}

// sortedPropNames gives ComponentSummary.Props a deterministic order; the
// set itself (symbols.ValuePropSet) carries none.
func sortedPropNames(props symbols.ValuePropSet) []string {
	if len(props) == 0 {
		return nil
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
