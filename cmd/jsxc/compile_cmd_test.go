package main

import (
	"os"
	"path/filepath"
	"testing"
)

const counterFixture = `
function Counter() {
  const [count, setCount] = createSignal(0);
  return <button onClick={() => setCount(count() + 1)}>{count()}</button>;
}
`

func writeFixture(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

func TestExpandPatternsMatchesGlob(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "counter.tsx", counterFixture)
	writeFixture(t, dir, "notes.md", "not a component")

	matches, err := expandPatterns([]string{filepath.Join(dir, "*.tsx")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %v", len(matches), matches)
	}
}

func TestExpandPatternsRejectsInvalidPattern(t *testing.T) {
	if _, err := expandPatterns([]string{"["}); err == nil {
		t.Fatal("expected an error for an invalid glob pattern")
	}
}

func TestResolveExtensionPrefersFlagThenConfigThenDefault(t *testing.T) {
	if got := resolveExtension(".jsx", ProjectConfig{Extension: ".tsx"}); got != ".jsx" {
		t.Errorf("expected flag value to win, got %q", got)
	}
	if got := resolveExtension("", ProjectConfig{Extension: ".tsx"}); got != ".tsx" {
		t.Errorf("expected config value, got %q", got)
	}
	if got := resolveExtension("", ProjectConfig{}); got != ".tsx" {
		t.Errorf("expected default .tsx, got %q", got)
	}
}

func TestRunCompileSequentialReportsComponent(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "counter.tsx", counterFixture)

	if err := runCompile([]string{filepath.Join(dir, "*.tsx")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
