// Package transform is the front-end pass of spec.md: it walks a parsed
// JSX/TypeScript AST (internal/ast) and lowers it to the IR (internal/ir),
// performing reactivity classification, slot-id assignment, list
// extraction, conditional normalization, and inter-component linkage.
//
// This package keeps the teacher's own name (withastro/compiler's
// internal/transform) because it is still, at heart, a tree-to-tree
// transform pass — only its target grammar changed, from Astro/HTML
// scoping to JSX IR lowering.
package transform

import (
	"strconv"

	"github.com/kfly8/barefootjs-sub001/internal/diag"
	"github.com/kfly8/barefootjs-sub001/internal/loc"
	"github.com/kfly8/barefootjs-sub001/internal/reactivity"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
)

// idGenerator yields successive decimal-string slot ids, starting at 0
// (spec.md §3.1). It is the only piece of a Context with observable
// mutation; callers must only advance it through Context.NextSlotID.
type idGenerator struct {
	next int
}

func (g *idGenerator) take() string {
	id := strconv.Itoa(g.next)
	g.next++
	return id
}

// Count returns the number of slot ids issued so far, used by a caller to
// size a downstream slot registry (spec.md §6.2).
func (g *idGenerator) Count() int {
	return g.next
}

// Context carries, by reference, the read-only collections fixed for the
// duration of one component compilation (spec.md §3.1). A Context is
// created per component, lives for one compilation, and is discarded
// (spec.md §3.4). It holds no locks and shares no mutable state across
// components compiled in parallel, provided each gets its own Context and
// id generator (spec.md §5).
type Context struct {
	Signals               []symbols.SignalDecl
	Memos                 []symbols.MemoDecl
	Components            symbols.ComponentTable
	ValueProps            symbols.ValuePropSet
	CurrentComponentName  string
	Handler               *diag.Handler

	reactive *reactivity.Predicate
	idGen    *idGenerator
	excluded map[string]bool
}

// NewContext builds a Context for compiling one component. handler may not
// be nil; it is the sink every structural anomaly (spec.md §7) is appended
// to.
func NewContext(
	currentComponentName string,
	signals []symbols.SignalDecl,
	memos []symbols.MemoDecl,
	components symbols.ComponentTable,
	valueProps symbols.ValuePropSet,
	handler *diag.Handler,
) *Context {
	if components == nil {
		components = symbols.ComponentTable{}
	}
	if valueProps == nil {
		valueProps = symbols.ValuePropSet{}
	}
	return &Context{
		Signals:              signals,
		Memos:                memos,
		Components:           components,
		ValueProps:           valueProps,
		CurrentComponentName: currentComponentName,
		Handler:              handler,
		reactive:             reactivity.New(signals, memos),
		idGen:                &idGenerator{},
	}
}

// NextSlotID advances and returns the next slot id. Slot ids are issued in
// document order of the nodes that request them during the top-down walk
// (spec.md §3.3 invariant 2); callers must request one only when they have
// already decided the node needs it.
func (c *Context) NextSlotID() string {
	return c.idGen.take()
}

// SlotCount returns the number of slot ids issued so far.
func (c *Context) SlotCount() int {
	return c.idGen.Count()
}

// IsReactive applies the lexical reactivity predicate (spec.md §4.4) to
// source, honoring any names excluded for this sub-tree (spec.md §4.5.4).
func (c *Context) IsReactive(source string) bool {
	return c.reactive.IsReactive(source, c.excluded)
}

// WithExcludedName returns a Context identical to c except that name is
// additionally excluded from the reactivity predicate, for dispatching into
// a sub-tree where name shadows a getter of the same identifier — e.g. a
// `.map()` iteration parameter (spec.md §4.5.4) or a ternary/list JSX body
// compiled with an extra bound name in scope. The id generator and handler
// are shared by reference: excluding a name must not start a second slot-id
// sequence or a second warnings sink.
func (c *Context) WithExcludedName(name string) *Context {
	next := make(map[string]bool, len(c.excluded)+1)
	for k, v := range c.excluded {
		next[k] = v
	}
	next[name] = true
	clone := *c
	clone.excluded = next
	return &clone
}

// Warn appends a warning at the given source location (spec.md §7). It
// never aborts compilation.
func (c *Context) Warn(code loc.DiagnosticCode, text string, at loc.Loc) {
	c.Handler.AppendWarning(code, text, at)
}
