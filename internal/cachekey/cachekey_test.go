package cachekey

import "testing"

func TestFromSourceIsStable(t *testing.T) {
	a := FromSource("function Foo() { return <div/> }")
	b := FromSource("function Foo() { return <div/> }")
	if a != b {
		t.Fatalf("expected identical source to hash identically, got %q vs %q", a, b)
	}
}

func TestFromSourceDiffers(t *testing.T) {
	a := FromSource("function Foo() { return <div/> }")
	b := FromSource("function Foo() { return <span/> }")
	if a == b {
		t.Fatalf("expected different source to hash differently")
	}
}

func TestFromFileIncludesFilename(t *testing.T) {
	source := "function Foo() { return <div/> }"
	a := FromFile("Foo.tsx", source)
	b := FromFile("Bar.tsx", source)
	if a == b {
		t.Fatalf("expected different filenames with same source to produce different keys")
	}
}
