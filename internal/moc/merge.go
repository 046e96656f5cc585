package moc

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vaultglass/vaultglass/internal/constants"
)

// IndexFile is the three-part layout of a map-of-content file: user-owned
// header, machine-owned links, user-owned footer, separated on disk by
// sentinel lines.
type IndexFile struct {
	Header []string
	Links  []string
	Footer []string
}

// ParseIndexFile splits an existing index into header and footer,
// discarding whatever sits between the two sentinels. One blank boundary
// line is dropped on each side to undo the padding Render adds, which keeps
// the read/write cycle stable.
func ParseIndexFile(content string) IndexFile {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	var f IndexFile
	i := 0
	for ; i < len(lines) && lines[i] != constants.IndexSentinel; i++ {
		f.Header = append(f.Header, lines[i])
	}
	i++
	for ; i < len(lines) && lines[i] != constants.IndexSentinel; i++ {
	}
	i++
	for ; i < len(lines); i++ {
		f.Footer = append(f.Footer, lines[i])
	}

	if n := len(f.Header); n > 0 && f.Header[n-1] == "" {
		f.Header = f.Header[:n-1]
	}
	if len(f.Footer) > 0 && f.Footer[0] == "" {
		f.Footer = f.Footer[1:]
	}

	return f
}

// Render produces the on-disk form. Nothing is appended after the footer;
// an empty footer leaves the file ending at the second sentinel's padding.
func (f IndexFile) Render() string {
	var b strings.Builder
	b.WriteString(strings.Join(f.Header, "\n"))
	b.WriteString("\n\n" + constants.IndexSentinel + "\n\n")
	b.WriteString(strings.Join(f.Links, "\n"))
	b.WriteString("\n\n" + constants.IndexSentinel + "\n\n")
	b.WriteString(strings.Join(f.Footer, "\n"))
	return b.String()
}

// MergeIndexFile combines fresh links with the header and footer read back
// from the file at path. When the file does not exist yet the supplied
// defaults are used instead.
func MergeIndexFile(path string, defaultHeader, links, defaultFooter []string) (IndexFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("writing new index", "name", filepath.Base(path))
			return IndexFile{Header: defaultHeader, Links: links, Footer: defaultFooter}, nil
		}
		return IndexFile{}, fmt.Errorf("read index %s: %w", filepath.Base(path), err)
	}

	slog.Debug("editing existing index", "name", filepath.Base(path))
	f := ParseIndexFile(string(data))
	f.Links = links
	return f, nil
}
