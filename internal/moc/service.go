package moc

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/vaultglass/vaultglass/internal/constants"
	"github.com/vaultglass/vaultglass/internal/templater"
)

// GenerateIndexes groups the vault's daily notes and writes one yearly
// index per year plus one monthly index per month, then makes sure
// tomorrow's daily note exists.
func (s *Service) GenerateIndexes() error {
	grouped, err := s.groupNotes()
	if err != nil {
		return err
	}

	for _, year := range sortedYears(grouped) {
		months := grouped[year]

		yearName := fmt.Sprintf("Daily notes - %d", year)
		yearPath := filepath.Join(s.vault.Path, yearName+constants.NoteExtension)
		slog.Info("updating yearly index", "name", filepath.Base(yearPath))

		yearHeader := []string{fmt.Sprintf("Months in %d:", year)}
		yearLinks := make([]string, 0, len(months))

		for _, month := range sortedMonthsDesc(months) {
			monthName := fmt.Sprintf("Daily notes - %d-%02d", year, month)
			monthPath := filepath.Join(s.vault.Path, monthName+constants.NoteExtension)
			yearLinks = append(yearLinks, "[["+monthName+"]]")

			slog.Info("updating monthly index", "name", filepath.Base(monthPath))
			monthHeader := []string{fmt.Sprintf("Days in %d-%02d:", year, month)}
			monthLinks := linkLines(months[month])

			if err := s.writeIndex(monthPath, monthHeader, monthLinks, nil, year, month); err != nil {
				return err
			}
		}

		if err := s.writeIndex(yearPath, yearHeader, yearLinks, nil, year, 1); err != nil {
			return err
		}
	}

	return s.ensureTomorrowNote()
}

// linkLines renders note basenames as wiki links, newest first.
func linkLines(names []string) []string {
	sorted := append([]string(nil), names...)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	links := make([]string, len(sorted))
	for i, name := range sorted {
		links[i] = "[[" + name + "]]"
	}
	return links
}

func (s *Service) writeIndex(
	path string,
	defaultHeader, links, defaultFooter []string,
	year, month int,
) error {
	merged, err := MergeIndexFile(path, defaultHeader, links, defaultFooter)
	if err != nil {
		return err
	}

	if s.dryRun {
		slog.Info("dry-run: skipping index write", "name", filepath.Base(path))
		return nil
	}

	if err := s.handler.WriteFile(path, merged.Render()); err != nil {
		return err
	}

	ts := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return s.handler.Touch(path, ts)
}

// ensureTomorrowNote creates tomorrow's daily note from the template so it
// is waiting when the day starts.
func (s *Service) ensureTomorrowNote() error {
	tomorrow := s.today.AddDate(0, 0, 1).Format("2006-01-02")
	path := filepath.Join(s.vault.DailyNotesDir(), tomorrow+constants.NoteExtension)

	exists, err := s.handler.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		slog.Debug("tomorrow's note already exists", "name", filepath.Base(path))
		return nil
	}

	content, err := s.templater.Render(templater.TemplateData{Title: tomorrow, Date: tomorrow})
	if err != nil {
		return err
	}

	if s.dryRun {
		slog.Info("dry-run: skipping tomorrow's note", "name", filepath.Base(path))
		return nil
	}

	slog.Debug("creating tomorrow's note", "name", filepath.Base(path))
	return s.handler.WriteFile(path, content)
}
