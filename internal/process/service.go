// Package process routes unprocessed daily note lines to their sinks and
// rewrites the notes without the routed content.
package process

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vaultglass/vaultglass/internal/config"
	"github.com/vaultglass/vaultglass/internal/constants"
	"github.com/vaultglass/vaultglass/internal/handler"
	"github.com/vaultglass/vaultglass/internal/note"
	"github.com/vaultglass/vaultglass/internal/rewrite"
	"github.com/vaultglass/vaultglass/internal/sink"
)

// Service processes one vault's daily notes with a fixed action map.
type Service struct {
	vault    *config.Vault
	handler  *handler.FileHandler
	registry *sink.Registry
	rules    []rewrite.Rule
	today    time.Time
	dryRun   bool
}

// NewService validates the action map against the sink registry and fails
// before any file is touched when a sink name has no registration.
func NewService(
	v *config.Vault,
	h *handler.FileHandler,
	r *sink.Registry,
	actions config.ActionList,
	today time.Time,
	dryRun bool,
) (*Service, error) {
	rules := make([]rewrite.Rule, len(actions))
	for i, a := range actions {
		rules[i] = rewrite.Rule{Prefix: a.Prefix, Sink: a.Sink}
	}

	if err := r.ValidateRules(rules); err != nil {
		return nil, err
	}

	return &Service{
		vault:    v,
		handler:  h,
		registry: r,
		rules:    rules,
		today:    today,
		dryRun:   dryRun,
	}, nil
}

// Run walks the vault's daily notes ascending by date, skipping notes with
// no unprocessed tag and notes dated after today. For each remaining note
// the full residual text and every collected item are computed before
// anything is written or dispatched, so a classification error leaves the
// note untouched.
func (s *Service) Run() error {
	notes, err := note.ListDailyNotes(s.vault.DailyNotesDir())
	if err != nil {
		return err
	}

	for _, n := range notes {
		content, err := s.handler.ReadFile(n.Path)
		if err != nil {
			return err
		}

		if !strings.Contains(content, constants.UnprocessedTag) {
			continue
		}
		if n.Date.After(s.today) {
			slog.Debug("not processing future note", "name", n.Basename())
			continue
		}

		slog.Info("processing note", "name", n.Basename(), "date", n.Date.Format("2006-01-02"))

		result, err := rewrite.Rewrite(content, s.rules)
		if err != nil {
			return fmt.Errorf("%s: %w", n.Basename(), err)
		}

		if result.Empty() {
			slog.Info("deleting newly empty note", "name", n.Basename())
			if !s.dryRun {
				if err := s.handler.Remove(n.Path); err != nil {
					return err
				}
			}
		} else {
			slog.Info("writing residual content", "name", n.Basename())
			if !s.dryRun {
				if err := s.handler.WriteFile(n.Path, result.Residual); err != nil {
					return err
				}
			}
		}

		if err := s.registry.Dispatch(result.Collected, result.Sinks, s.dryRun); err != nil {
			return err
		}
	}

	return nil
}
