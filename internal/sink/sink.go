// Package sink routes collected note lines to named external destinations.
package sink

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vaultglass/vaultglass/internal/rewrite"
)

// ErrUnknownSink signals an action map entry whose sink name has no
// registration.
var ErrUnknownSink = errors.New("unknown sink")

// Func sends routed text to an external destination. Implementations log
// the would-be effect and perform nothing when dryRun is set.
type Func func(text string, dryRun bool) error

// Sink is a named destination for routed note lines. A journal-like sink is
// invoked once per run with all its items joined by a double newline; every
// other sink is invoked once per item, in collection order.
type Sink struct {
	Name        string
	JournalLike bool
	Send        Func
}

// Registry holds the sinks available to a run. It is populated once at
// startup and read-only afterwards.
type Registry struct {
	order []string
	sinks map[string]*Sink
}

func NewRegistry() *Registry {
	return &Registry{sinks: make(map[string]*Sink)}
}

func (r *Registry) Register(s *Sink) error {
	if s == nil || s.Name == "" {
		return errors.New("sink: registration without a name")
	}
	if s.Send == nil {
		return fmt.Errorf("sink %q: registration without a callback", s.Name)
	}
	if _, dup := r.sinks[s.Name]; dup {
		return fmt.Errorf("sink %q: registered twice", s.Name)
	}

	r.order = append(r.order, s.Name)
	r.sinks[s.Name] = s
	return nil
}

func (r *Registry) Get(name string) (*Sink, bool) {
	s, ok := r.sinks[name]
	return s, ok
}

// Names returns the registered sink names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// ValidateRules checks that every rule references a registered sink. Called
// before any file is touched so a bad action map aborts the whole run.
func (r *Registry) ValidateRules(rules []rewrite.Rule) error {
	for _, rule := range rules {
		if _, ok := r.sinks[rule.Sink]; !ok {
			return fmt.Errorf("%w: %q (for prefix %q)", ErrUnknownSink, rule.Sink, rule.Prefix)
		}
	}
	return nil
}

// Dispatch invokes each named sink with its collected items, walking order
// front to back. Sinks with nothing collected are not invoked.
func (r *Registry) Dispatch(collected map[string][]string, order []string, dryRun bool) error {
	for _, name := range order {
		items := collected[name]
		if len(items) == 0 {
			continue
		}

		s, ok := r.Get(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSink, name)
		}

		if s.JournalLike {
			if err := s.Send(strings.Join(items, "\n\n"), dryRun); err != nil {
				return fmt.Errorf("sink %q: %w", name, err)
			}
			continue
		}

		for _, item := range items {
			if err := s.Send(item, dryRun); err != nil {
				return fmt.Errorf("sink %q: %w", name, err)
			}
		}
	}

	return nil
}
