// Package note models the date-named daily note files of a vault.
package note

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/vaultglass/vaultglass/internal/constants"
)

// DailyNote is one date-identified file in a vault's daily notes folder.
type DailyNote struct {
	Path string
	Date time.Time
}

var filenamePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.md$`)

// Basename returns the filename without its extension, which doubles as the
// note's link target.
func (n DailyNote) Basename() string {
	return strings.TrimSuffix(filepath.Base(n.Path), constants.NoteExtension)
}

// ListDailyNotes returns the daily notes under dir sorted ascending by
// date. Files not matching the YYYY-MM-DD.md pattern are skipped, not an
// error.
func ListDailyNotes(dir string) ([]DailyNote, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list daily notes: %w", err)
	}

	notes := make([]DailyNote, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !filenamePattern.MatchString(name) {
			slog.Debug("skipping non-daily file", "name", name)
			continue
		}

		date, err := time.ParseInLocation(
			"2006-01-02",
			strings.TrimSuffix(name, constants.NoteExtension),
			time.Local,
		)
		if err != nil {
			slog.Debug("filename matches the pattern but is not a real date", "name", name)
			continue
		}

		notes = append(notes, DailyNote{Path: filepath.Join(dir, name), Date: date})
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Date.Before(notes[j].Date)
	})

	return notes, nil
}
