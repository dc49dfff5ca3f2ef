// Package reactivity implements the lexical reactivity predicate of
// spec.md §4.4: a purely textual check for a word-boundary call-site of a
// declared signal or memo getter, deliberately not a structural parse of
// the expression (spec.md §9: "a structurally different heuristic would
// mis-classify (for example) countSomething as containing a reference to a
// count getter").
package reactivity

import (
	"regexp"

	"github.com/kfly8/barefootjs-sub001/internal/helpers"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
)

type getterPattern struct {
	name string
	re   *regexp.Regexp
}

// Predicate holds one compiled word-boundary regexp per declared signal and
// memo getter, built once per Context so every expression classified during
// one compilation reuses it (spec.md §3.1: signals/memos are fixed for the
// duration of one component compilation).
type Predicate struct {
	patterns []getterPattern
}

// New builds a Predicate from the signal and memo getters visible to one
// component compilation.
func New(signals []symbols.SignalDecl, memos []symbols.MemoDecl) *Predicate {
	p := &Predicate{patterns: make([]getterPattern, 0, len(signals)+len(memos))}
	for _, s := range signals {
		p.patterns = append(p.patterns, getterPattern{name: s.GetterName, re: callSiteRegexp(s.GetterName)})
	}
	for _, m := range memos {
		p.patterns = append(p.patterns, getterPattern{name: m.GetterName, re: callSiteRegexp(m.GetterName)})
	}
	return p
}

func callSiteRegexp(getter string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(getter) + `\s*\(`)
}

// IsReactive reports whether source contains a call-site of any tracked
// getter, ignoring getters whose name appears in excluded — used by the
// list extractor to keep a `.map()` iteration parameter from shadowing a
// same-named signal (spec.md §4.5.4, §4.8 item 8).
func (p *Predicate) IsReactive(source string, excluded map[string]bool) bool {
	if len(p.patterns) == 0 {
		return false
	}
	clean, err := helpers.RemoveComments(source)
	if err != nil {
		clean = source
	}
	for _, gp := range p.patterns {
		if excluded != nil && excluded[gp.name] {
			continue
		}
		if gp.re.MatchString(clean) {
			return true
		}
	}
	return false
}
