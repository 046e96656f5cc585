package templater

import (
	"os"
	"testing"

	"github.com/vaultglass/vaultglass/internal/config"
)

func newTestVault(t *testing.T, template string) *config.Vault {
	t.Helper()

	v := &config.Vault{
		Path:            t.TempDir(),
		NotesSubdir:     "Daily notes",
		TemplatesSubdir: "Templates",
		DailyTemplate:   "Daily.md",
	}
	if err := os.MkdirAll(v.TemplatesDir(), 0o755); err != nil {
		t.Fatalf("failed to create templates dir: %v", err)
	}
	if err := os.WriteFile(v.DailyTemplatePath(), []byte(template), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	return v
}

func TestNewTemplaterMissingTemplate(t *testing.T) {
	v := &config.Vault{
		Path:            t.TempDir(),
		NotesSubdir:     "Daily notes",
		TemplatesSubdir: "Templates",
		DailyTemplate:   "Daily.md",
	}

	if _, err := NewTemplater(v); err == nil {
		t.Fatal("expected an error when the template file is missing")
	}
}

func TestContentsReturnsRawTemplate(t *testing.T) {
	v := newTestVault(t, "## Tasks\n\n## Journal\n")

	tmpl, err := NewTemplater(v)
	if err != nil {
		t.Fatalf("NewTemplater returned error: %v", err)
	}
	if tmpl.Contents() != "## Tasks\n\n## Journal\n" {
		t.Fatalf("unexpected contents %q", tmpl.Contents())
	}
}

func TestIsEmptyNote(t *testing.T) {
	v := newTestVault(t, "## Tasks\n\n## Journal\n")

	tmpl, err := NewTemplater(v)
	if err != nil {
		t.Fatalf("NewTemplater returned error: %v", err)
	}

	cases := []struct {
		name    string
		content string
		want    bool
	}{
		{"exact copy", "## Tasks\n\n## Journal\n", true},
		{"extra surrounding whitespace", "\n## Tasks\n\n## Journal\n\n\n", true},
		{"edited note", "## Tasks\n- did a thing\n\n## Journal\n", false},
		{"empty file", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tmpl.IsEmptyNote(tc.content); got != tc.want {
				t.Fatalf("IsEmptyNote(%q) = %v, want %v", tc.content, got, tc.want)
			}
		})
	}
}

func TestRenderSubstitutesFields(t *testing.T) {
	v := newTestVault(t, "# {{.Title}}\nDate: {{.Date}}\n")

	tmpl, err := NewTemplater(v)
	if err != nil {
		t.Fatalf("NewTemplater returned error: %v", err)
	}

	got, err := tmpl.Render(TemplateData{Title: "2025-01-02", Date: "2025-01-02"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "# 2025-01-02\nDate: 2025-01-02\n" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestRenderPlainTemplateIsVerbatim(t *testing.T) {
	v := newTestVault(t, "## Tasks\n\n## Journal\n")

	tmpl, err := NewTemplater(v)
	if err != nil {
		t.Fatalf("NewTemplater returned error: %v", err)
	}

	got, err := tmpl.Render(TemplateData{Title: "x", Date: "y"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != tmpl.Contents() {
		t.Fatalf("plain template changed on render: %q", got)
	}
}
