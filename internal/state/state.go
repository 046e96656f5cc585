package state

import (
	"fmt"
	"os"
	"time"

	"github.com/vaultglass/vaultglass/internal/config"
	"github.com/vaultglass/vaultglass/internal/handler"
	"github.com/vaultglass/vaultglass/internal/sink"
	"github.com/vaultglass/vaultglass/internal/templater"
	"github.com/vaultglass/vaultglass/utils"
)

// State is the per-run aggregate handed to every command: the loaded
// config, the activated vault, and the collaborators built for it.
type State struct {
	Config    *config.Config
	Vault     *config.Vault
	VaultName string
	Templater *templater.Templater
	Handler   *handler.FileHandler
	Registry  *sink.Registry
	Home      string
	Today     time.Time
}

// NewState loads the config, activates the named vault, and constructs the
// run's collaborators. Every failure here is fatal before any file
// mutation.
func NewState(vaultName string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}

	vault, err := cfg.ActivateVault(vaultName)
	if err != nil {
		return nil, err
	}

	t, err := templater.NewTemplater(vault)
	if err != nil {
		return nil, fmt.Errorf("failed to create templater: %w", err)
	}

	today, err := utils.Today()
	if err != nil {
		return nil, err
	}

	return &State{
		Config:    cfg,
		Vault:     vault,
		VaultName: vaultName,
		Templater: t,
		Handler:   handler.NewFileHandler(vault.Path),
		Registry:  sink.Defaults(),
		Home:      home,
		Today:     today,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return home, nil
}
