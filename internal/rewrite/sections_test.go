package rewrite

import (
	"reflect"
	"testing"
)

func TestPruneDropsHeaderOnlySection(t *testing.T) {
	got := PruneEmptySections([]string{"# Title", ""})
	if len(got) != 0 {
		t.Fatalf("expected the empty section to be removed, got %#v", got)
	}
}

func TestPruneKeepsSectionWithContent(t *testing.T) {
	got := PruneEmptySections([]string{"# Title", "some text", "", ""})
	want := []string{"# Title", "some text", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestPruneKeepsHeaderlessLeadingRun(t *testing.T) {
	got := PruneEmptySections([]string{"intro line", "", "# Empty", ""})
	want := []string{"intro line", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestPruneDropsBlankHeaderlessRun(t *testing.T) {
	got := PruneEmptySections([]string{"", "", "# Kept", "content"})
	want := []string{"# Kept", "content", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestPruneRetainsMultipleSectionsInOrder(t *testing.T) {
	got := PruneEmptySections([]string{
		"# One", "a", "",
		"# Gone", "",
		"# Two", "b",
	})
	want := []string{"# One", "a", "", "# Two", "b", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}
