package helpers

import (
	"errors"
	"strings"
)

// RemoveComments strips both block (/* ... */) and inline (// ...) comments
// from a JS/TS expression source string. The reactivity predicate (spec.md
// §4.4) is purely lexical, so a getter call mentioned only inside a comment
// must not count as a reactive call site; this is run before the
// word-boundary regexp match.
func RemoveComments(input string) (string, error) {
	var (
		sb        = strings.Builder{}
		inComment = false
	)
	for cur := 0; cur < len(input); cur++ {
		peekIs := func(assert byte) bool { return cur+1 < len(input) && input[cur+1] == assert }

		if input[cur] == '/' && !inComment {
			if peekIs('*') {
				inComment = true
				cur++
				continue
			} else if peekIs('/') {
				for cur < len(input) && input[cur] != '\n' {
					cur++
				}
				continue
			}
		} else if input[cur] == '*' && inComment && peekIs('/') {
			inComment = false
			cur++
			continue
		}

		if !inComment {
			sb.WriteByte(input[cur])
		}
	}

	if inComment {
		return "", errors.New("unterminated comment")
	}

	return strings.TrimSpace(sb.String()), nil
}
