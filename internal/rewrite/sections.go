package rewrite

import (
	"strings"

	"github.com/vaultglass/vaultglass/internal/constants"
)

// PruneEmptySections drops every section that holds nothing beyond its
// header and appends a single blank separator line after each retained one.
// A section starts at a "# " header line and runs to the next header; lines
// before the first header form an implicit headerless section, kept
// whenever it has any lines left after trailing blanks are stripped.
func PruneEmptySections(lines []string) []string {
	var sections [][]string
	current := []string{}
	for _, line := range lines {
		if strings.HasPrefix(line, constants.SectionPrefix) {
			sections = append(sections, current)
			current = []string{line}
		} else {
			current = append(current, line)
		}
	}
	sections = append(sections, current)

	out := []string{}
	for i, section := range sections {
		section = trimTrailingBlank(section)
		if i == 0 {
			if len(section) == 0 {
				continue
			}
		} else if len(section) <= 1 {
			continue
		}
		out = append(out, section...)
		out = append(out, "")
	}

	return out
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
