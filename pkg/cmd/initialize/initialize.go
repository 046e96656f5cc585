package initialize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultglass/vaultglass/internal/config"
	"github.com/vaultglass/vaultglass/internal/state"
)

func NewCmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "initialize",
		Aliases: []string{"init", "i"},
		Short:   "Create a starter configuration file.",
		Long:    "Writes a commented starter config so you can fill in your vaults and action map.",
		Example: "vaultglass init",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := state.GetHomeDir()
			if err != nil {
				return err
			}

			path, created, err := config.EnsureConfigExists(home)
			if err != nil {
				return err
			}

			if created {
				fmt.Printf("Created config file at %s\n", path)
			} else {
				fmt.Printf("Config file already exists at %s\n", path)
			}
			return nil
		},
	}

	return cmd
}
