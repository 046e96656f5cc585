// Package templater loads and renders a vault's daily note template.
package templater

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/vaultglass/vaultglass/internal/config"
)

// TemplateData is the payload available inside a daily template. A template
// without directives renders verbatim.
type TemplateData struct {
	Title string
	Date  string
}

// Templater caches one vault's daily note template for the run.
type Templater struct {
	vault *config.Vault
	raw   string
}

func NewTemplater(vault *config.Vault) (*Templater, error) {
	data, err := os.ReadFile(vault.DailyTemplatePath())
	if err != nil {
		return nil, fmt.Errorf("read daily template: %w", err)
	}
	return &Templater{vault: vault, raw: string(data)}, nil
}

// Contents returns the raw template text.
func (t *Templater) Contents() string {
	return t.raw
}

// IsEmptyNote reports whether content is an untouched copy of the daily
// template, compared after trimming surrounding whitespace on both sides.
func (t *Templater) IsEmptyNote(content string) bool {
	return strings.TrimSpace(content) == strings.TrimSpace(t.raw)
}

// Render executes the template with data.
func (t *Templater) Render(data TemplateData) (string, error) {
	tmpl, err := template.New(t.vault.DailyTemplate).Parse(t.raw)
	if err != nil {
		return "", fmt.Errorf("parse daily template: %w", err)
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", fmt.Errorf("render daily template: %w", err)
	}

	return rendered.String(), nil
}
