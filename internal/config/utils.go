package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vaultglass/vaultglass/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

const defaultConfig = `# vaultglass configuration
#
# vaults:
#   personal:
#     path: /home/you/vault
#     notes_subdir: "Daily notes"
#     templates_subdir: Templates
#     daily_template: Daily.md
vaults: {}

process:
  actions:
    - prefix: "- [ ] "
      sink: OmniFocus
    - prefix: "% "
      sink: "Day One"
`

// EnsureConfigExists creates the config directory and a commented starter
// config file if none is present. It reports whether a new file was
// written.
func EnsureConfigExists(homeDir string) (string, bool, error) {
	configPath := GetConfigPath(homeDir)
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath, false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("failed to check config file existence: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to create config file: %w", err)
	}

	return configPath, true, nil
}
