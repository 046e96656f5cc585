package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrUnknownVault signals a vault name that is not present in the config.
var ErrUnknownVault = errors.New("unknown vault")

// Vault describes one Obsidian-style vault: where it lives and where its
// daily notes and templates sit inside it.
type Vault struct {
	Path            string `yaml:"path"             json:"path"`
	NotesSubdir     string `yaml:"notes_subdir"     json:"notes_subdir"`
	TemplatesSubdir string `yaml:"templates_subdir" json:"templates_subdir"`
	DailyTemplate   string `yaml:"daily_template"   json:"daily_template"`
}

// DailyNotesDir returns the directory holding the vault's daily notes.
func (v *Vault) DailyNotesDir() string {
	return filepath.Join(v.Path, v.NotesSubdir)
}

// TemplatesDir returns the vault's template directory.
func (v *Vault) TemplatesDir() string {
	return filepath.Join(v.Path, v.TemplatesSubdir)
}

// DailyTemplatePath returns the path of the daily note template file.
func (v *Vault) DailyTemplatePath() string {
	return filepath.Join(v.TemplatesDir(), v.DailyTemplate)
}

func (v *Vault) Validate() error {
	return validation.ValidateStruct(v,
		validation.Field(&v.Path, validation.Required),
		validation.Field(&v.NotesSubdir, validation.Required),
		validation.Field(&v.TemplatesSubdir, validation.Required),
		validation.Field(&v.DailyTemplate, validation.Required),
	)
}

// Action maps a literal line prefix to the sink that receives matching
// lines.
type Action struct {
	Prefix string `yaml:"prefix" json:"prefix"`
	Sink   string `yaml:"sink"   json:"sink"`
}

// ActionList preserves declaration order. Classification walks it front to
// back and the first matching prefix wins.
type ActionList []Action

// UnmarshalYAML accepts either the sequence form
//
//	actions:
//	  - prefix: "- [ ] "
//	    sink: OmniFocus
//
// or the legacy mapping form (prefix: sink), whose order yaml.v3 keeps in
// the node's Content slice.
func (l *ActionList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var raw []Action
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*l = ActionList(raw)
	case yaml.MappingNode:
		out := make(ActionList, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			out = append(out, Action{
				Prefix: value.Content[i].Value,
				Sink:   value.Content[i+1].Value,
			})
		}
		*l = out
	default:
		return fmt.Errorf("process.actions: expected a sequence or mapping, got %v", value.Kind)
	}
	return nil
}

func (l ActionList) Validate() error {
	if len(l) == 0 {
		return errors.New("process.actions: at least one action is required")
	}

	seen := make(map[string]struct{}, len(l))
	for _, a := range l {
		if a.Prefix == "" {
			return fmt.Errorf("process.actions: empty prefix for sink %q", a.Sink)
		}
		if strings.TrimSpace(a.Sink) == "" {
			return fmt.Errorf("process.actions: no sink for prefix %q", a.Prefix)
		}
		if _, dup := seen[a.Prefix]; dup {
			return fmt.Errorf("process.actions: duplicate prefix %q", a.Prefix)
		}
		seen[a.Prefix] = struct{}{}
	}
	return nil
}

// ProcessConfig configures the process command.
type ProcessConfig struct {
	Actions ActionList `yaml:"actions" json:"actions"`
}

// Config is the full vaultglass configuration.
type Config struct {
	Vaults  map[string]*Vault `yaml:"vaults"  json:"vaults"`
	Process ProcessConfig     `yaml:"process" json:"process"`

	active     *Vault `yaml:"-"`
	activeName string `yaml:"-"`
}

// Load reads and validates the config file under home. A missing file is a
// ConfigInitError so callers can point at the init command; any other
// problem aborts the run before a single file is touched.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigInitError{
				msg: fmt.Sprintf("no config file at %s (run 'vaultglass init' to create one)", path),
			}
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	if len(cfg.Vaults) == 0 {
		return errors.New("no vaults configured")
	}

	for name, v := range cfg.Vaults {
		if v == nil {
			return fmt.Errorf("vault %q: empty definition", name)
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("vault %q: %w", name, err)
		}
	}

	return cfg.Process.Actions.Validate()
}

// ActivateVault selects the named vault for this run and mirrors its paths
// into viper.
func (cfg *Config) ActivateVault(name string) (*Vault, error) {
	v, ok := cfg.Vaults[name]
	if !ok {
		return nil, fmt.Errorf(
			"%w: %q (configured: %s)",
			ErrUnknownVault,
			name,
			strings.Join(cfg.VaultNames(), ", "),
		)
	}

	cfg.active = v
	cfg.activeName = name
	syncViperWithVault(v)

	return v, nil
}

// ActiveVault returns the vault selected by ActivateVault.
func (cfg *Config) ActiveVault() (*Vault, error) {
	if cfg.active == nil {
		return nil, errors.New("no vault is currently selected")
	}
	return cfg.active, nil
}

// ActiveVaultName returns the name passed to ActivateVault.
func (cfg *Config) ActiveVaultName() string {
	return cfg.activeName
}

func (cfg *Config) VaultNames() []string {
	names := make([]string, 0, len(cfg.Vaults))
	for name := range cfg.Vaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func syncViperWithVault(v *Vault) {
	viper.Set("vaultdir", v.Path)
	viper.Set("notes_subdir", v.NotesSubdir)
	viper.Set("templates_subdir", v.TemplatesSubdir)
	viper.Set("daily_template", v.DailyTemplate)
}
