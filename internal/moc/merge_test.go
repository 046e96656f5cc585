package moc

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRenderNewIndex(t *testing.T) {
	f := IndexFile{
		Header: []string{"Months in 2024:"},
		Links:  []string{"[[Daily notes - 2024-02]]", "[[Daily notes - 2024-01]]"},
	}

	want := "Months in 2024:\n\n---\n\n[[Daily notes - 2024-02]]\n[[Daily notes - 2024-01]]\n\n---\n\n"
	if got := f.Render(); got != want {
		t.Fatalf("unexpected render:\nwant %q\ngot  %q", want, got)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	f := IndexFile{
		Header: []string{"My header", "with two lines"},
		Links:  []string{"[[a]]", "[[b]]"},
		Footer: []string{"footer notes"},
	}

	parsed := ParseIndexFile(f.Render())

	if !reflect.DeepEqual(parsed.Header, f.Header) {
		t.Fatalf("header did not round-trip: %#v", parsed.Header)
	}
	if !reflect.DeepEqual(parsed.Footer, f.Footer) {
		t.Fatalf("footer did not round-trip: %#v", parsed.Footer)
	}
	if len(parsed.Links) != 0 {
		t.Fatalf("expected the body to be discarded on parse, got %#v", parsed.Links)
	}
}

func TestMergeUsesDefaultsForNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.md")

	f, err := MergeIndexFile(path, []string{"Header:"}, []string{"[[x]]"}, nil)
	if err != nil {
		t.Fatalf("MergeIndexFile returned error: %v", err)
	}

	if !reflect.DeepEqual(f.Header, []string{"Header:"}) {
		t.Fatalf("expected default header, got %#v", f.Header)
	}
	if !reflect.DeepEqual(f.Links, []string{"[[x]]"}) {
		t.Fatalf("expected fresh links, got %#v", f.Links)
	}
}

func TestMergePreservesUserHeaderAndFooter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.md")

	existing := "My custom header\nsecond line\n\n---\n\n[[stale link]]\n\n---\n\nmy footer notes"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	f, err := MergeIndexFile(path, []string{"default"}, []string{"[[fresh]]"}, nil)
	if err != nil {
		t.Fatalf("MergeIndexFile returned error: %v", err)
	}

	if !reflect.DeepEqual(f.Header, []string{"My custom header", "second line"}) {
		t.Fatalf("user header not preserved: %#v", f.Header)
	}
	if !reflect.DeepEqual(f.Footer, []string{"my footer notes"}) {
		t.Fatalf("user footer not preserved: %#v", f.Footer)
	}
	if !reflect.DeepEqual(f.Links, []string{"[[fresh]]"}) {
		t.Fatalf("links not replaced: %#v", f.Links)
	}
}

func TestMergeWriteCycleIsStable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.md")
	links := []string{"[[2024-01-05]]", "[[2024-01-02]]"}

	first, err := MergeIndexFile(path, []string{"Days in 2024-01:"}, links, nil)
	if err != nil {
		t.Fatalf("first merge returned error: %v", err)
	}
	if err := os.WriteFile(path, []byte(first.Render()), 0o644); err != nil {
		t.Fatalf("failed to write first pass: %v", err)
	}

	second, err := MergeIndexFile(path, []string{"Days in 2024-01:"}, links, nil)
	if err != nil {
		t.Fatalf("second merge returned error: %v", err)
	}

	if second.Render() != first.Render() {
		t.Fatalf("output not byte-identical on rerun:\nfirst:  %q\nsecond: %q",
			first.Render(), second.Render())
	}
}
