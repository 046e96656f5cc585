// Package moc generates the yearly and monthly map-of-content files that
// index a vault's daily notes.
package moc

import (
	"log/slog"
	"sort"
	"time"

	"github.com/vaultglass/vaultglass/internal/config"
	"github.com/vaultglass/vaultglass/internal/handler"
	"github.com/vaultglass/vaultglass/internal/note"
	"github.com/vaultglass/vaultglass/internal/templater"
)

// Service generates index files for one vault.
type Service struct {
	vault     *config.Vault
	handler   *handler.FileHandler
	templater *templater.Templater
	today     time.Time
	dryRun    bool
}

func NewService(
	v *config.Vault,
	h *handler.FileHandler,
	t *templater.Templater,
	today time.Time,
	dryRun bool,
) *Service {
	return &Service{vault: v, handler: h, templater: t, today: today, dryRun: dryRun}
}

// groupNotes buckets surviving daily note basenames by year and month,
// walking ascending by date. Past notes that are still untouched copies of
// the daily template are deleted along the way and excluded from the
// result; dry-run skips the deletion but still excludes them.
func (s *Service) groupNotes() (map[int]map[int][]string, error) {
	notes, err := note.ListDailyNotes(s.vault.DailyNotesDir())
	if err != nil {
		return nil, err
	}

	grouped := make(map[int]map[int][]string)
	for _, n := range notes {
		name := n.Basename()
		slog.Info("found daily note", "name", name)

		content, err := s.handler.ReadFile(n.Path)
		if err != nil {
			return nil, err
		}

		if n.Date.Before(s.today) && s.templater.IsEmptyNote(content) {
			slog.Info("pruning stale empty note", "name", name)
			if !s.dryRun {
				if err := s.handler.Remove(n.Path); err != nil {
					return nil, err
				}
			}
			continue
		}

		year, month := n.Date.Year(), int(n.Date.Month())
		if grouped[year] == nil {
			grouped[year] = make(map[int][]string)
		}
		grouped[year][month] = append(grouped[year][month], name)
	}

	return grouped, nil
}

func sortedYears(grouped map[int]map[int][]string) []int {
	years := make([]int, 0, len(grouped))
	for year := range grouped {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

func sortedMonthsDesc(months map[int][]string) []int {
	keys := make([]int, 0, len(months))
	for month := range months {
		keys = append(keys, month)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	return keys
}
