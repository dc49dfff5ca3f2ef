// Package testutil collects the small set of test helpers shared by the
// transform/ast/ir packages' test suites, in the spirit of
// withastro/compiler's internal/test_utils.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
)

// Dedent strips common leading whitespace from a multi-line JSX fixture so
// test source can stay indented with the surrounding Go code.
func Dedent(input string) string {
	return dedent.Dedent(
		strings.ReplaceAll(
			strings.TrimLeft(
				strings.TrimRight(input, " \n\r"),
				" \t\r\n"),
			"\n\n\n", "\n\n"),
	)
}

// ANSIDiff renders a cmp.Diff with additions/removals colorized, the way
// the teacher's ANSIDiff does for terminal-friendly test failures.
func ANSIDiff(x, y interface{}, opts ...cmp.Option) string {
	escapeCode := func(code int) string {
		return fmt.Sprintf("\x1b[%dm", code)
	}
	diff := cmp.Diff(x, y, opts...)
	if diff == "" {
		return ""
	}
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "-"):
			lines[i] = escapeCode(31) + s + escapeCode(0)
		case strings.HasPrefix(s, "+"):
			lines[i] = escapeCode(32) + s + escapeCode(0)
		}
	}
	return strings.Join(lines, "\n")
}

// redactSnapshotName removes characters that are unsafe in a snapshot file
// name but common in Go subtest names (spaces, quotes, generics brackets).
func redactSnapshotName(name string) string {
	r := strings.NewReplacer(
		"#", "_", "<", "_", ">", "_", ")", "_", "(", "_",
		":", "_", " ", "_", "'", "_", "\"", "_", "@", "_",
		"`", "_", "+", "_",
	)
	return r.Replace(name)
}

// MatchIRSnapshot snapshots the JSON dump of a compiled IR forest alongside
// the JSX source that produced it, the way the teacher's MakeSnapshot pairs
// input and output in one `__snapshots__` fixture.
func MatchIRSnapshot(t *testing.T, input, irJSON string) {
	t.Helper()
	s := snaps.WithConfig(
		snaps.Filename(redactSnapshotName(t.Name())),
		snaps.Dir("__snapshots__"),
	)
	snapshot := "## Input\n\n```jsx\n" + Dedent(input) + "\n```\n\n## IR\n\n```json\n" + irJSON + "\n```"
	s.MatchSnapshot(t, snapshot)
}
