// Package js_scanner provides small lexical helpers over JS/TS identifiers,
// in the same hand-rolled, allocation-free style as withastro/compiler's
// original frontmatter scanner.
package js_scanner

import (
	"unicode"
	"unicode/utf8"
)

// IsPascalCase reports whether name's first rune is an uppercase letter.
// Per spec.md §4.1/§4.6/§4.7, a tag or function name is treated as a
// component reference only when it starts with an uppercase letter;
// everything else is an intrinsic (HTML) element or an ordinary function.
func IsPascalCase(name string) bool {
	if name == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return unicode.IsUpper(r)
}
