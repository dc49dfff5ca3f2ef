package filecache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadReturnsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counter.tsx")
	want := []byte("function Counter() { return <div/>; }")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := New()
	defer c.Close()

	got, err := c.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("expected %q, got %q", want, got)
	}

	// A second read must hit the cache rather than re-open the file.
	got2, err := c.Read(path)
	if err != nil {
		t.Fatalf("unexpected error on second read: %v", err)
	}
	if string(got2) != string(want) {
		t.Errorf("expected cached read to match, got %q", got2)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 cached file, got %d", c.Len())
	}
}

func TestReadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.tsx")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := New()
	defer c.Close()

	data, err := c.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty contents, got %q", data)
	}
}

func TestReadMissingFile(t *testing.T) {
	c := New()
	defer c.Close()

	if _, err := c.Read(filepath.Join(t.TempDir(), "missing.tsx")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
