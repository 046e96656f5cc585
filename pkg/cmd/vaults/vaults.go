package vaults

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultglass/vaultglass/internal/config"
	"github.com/vaultglass/vaultglass/internal/state"
)

func NewCmdVaults() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaults",
		Short: "List the configured vaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := state.GetHomeDir()
			if err != nil {
				return err
			}

			cfg, err := config.Load(home)
			if err != nil {
				return err
			}

			for _, name := range cfg.VaultNames() {
				fmt.Printf("%s\t%s\n", name, cfg.Vaults[name].Path)
			}
			return nil
		},
	}

	return cmd
}
