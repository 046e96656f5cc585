package sink

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vaultglass/vaultglass/internal/rewrite"
)

func recordingSink(name string, journalLike bool, calls *[]string) *Sink {
	return &Sink{
		Name:        name,
		JournalLike: journalLike,
		Send: func(text string, dryRun bool) error {
			*calls = append(*calls, text)
			return nil
		},
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	var calls []string

	if err := r.Register(recordingSink("Todo", false, &calls)); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := r.Register(recordingSink("Todo", false, &calls)); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestNamesKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	var calls []string

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		if err := r.Register(recordingSink(name, false, &calls)); err != nil {
			t.Fatalf("registration failed: %v", err)
		}
	}

	if got := r.Names(); !reflect.DeepEqual(got, []string{"Zeta", "Alpha", "Mid"}) {
		t.Fatalf("unexpected order: %#v", got)
	}
}

func TestValidateRulesFlagsUnknownSink(t *testing.T) {
	r := NewRegistry()
	var calls []string
	if err := r.Register(recordingSink("Todo", false, &calls)); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	rules := []rewrite.Rule{
		{Prefix: "- [ ] ", Sink: "Todo"},
		{Prefix: "% ", Sink: "Missing"},
	}
	if err := r.ValidateRules(rules); !errors.Is(err, ErrUnknownSink) {
		t.Fatalf("expected ErrUnknownSink, got %v", err)
	}
}

func TestDispatchPerItemPreservesOrder(t *testing.T) {
	r := NewRegistry()
	var calls []string
	if err := r.Register(recordingSink("Todo", false, &calls)); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	collected := map[string][]string{"Todo": {"first", "second", "third"}}
	if err := r.Dispatch(collected, []string{"Todo"}, false); err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}

	if !reflect.DeepEqual(calls, []string{"first", "second", "third"}) {
		t.Fatalf("unexpected calls: %#v", calls)
	}
}

func TestDispatchJoinsJournalLikeSink(t *testing.T) {
	r := NewRegistry()
	var calls []string
	if err := r.Register(recordingSink("Journal", true, &calls)); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	collected := map[string][]string{"Journal": {"one", "two"}}
	if err := r.Dispatch(collected, []string{"Journal"}, false); err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}

	if !reflect.DeepEqual(calls, []string{"one\n\ntwo"}) {
		t.Fatalf("expected a single joined call, got %#v", calls)
	}
}

func TestDispatchSkipsSinksWithNothingCollected(t *testing.T) {
	r := NewRegistry()
	var calls []string
	if err := r.Register(recordingSink("Todo", false, &calls)); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if err := r.Dispatch(map[string][]string{}, []string{"Todo"}, false); err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if len(calls) != 0 {
		t.Fatalf("expected no calls, got %#v", calls)
	}
}

func TestDefaultsRegistersBuiltins(t *testing.T) {
	r := Defaults()

	for _, name := range []string{"Day One", "OmniFocus", "Reminders", "Clipboard"} {
		s, ok := r.Get(name)
		if !ok {
			t.Fatalf("expected built-in sink %q", name)
		}
		if name == "Day One" && !s.JournalLike {
			t.Fatal("expected Day One to be journal-like")
		}
		if name != "Day One" && s.JournalLike {
			t.Fatalf("expected %q to dispatch per item", name)
		}
	}
}

func TestEscapeUsesPercentTwenty(t *testing.T) {
	if got := escape("a b&c"); got != "a%20b%26c" {
		t.Fatalf("unexpected escaping: %q", got)
	}
}
