package process

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/vaultglass/vaultglass/internal/process"
	"github.com/vaultglass/vaultglass/internal/state"
)

func NewCmdProcess() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "process [vault]",
		Aliases: []string{"p", "process-notes"},
		Short:   "Send unprocessed daily note lines to their configured apps.",
		Long: heredoc.Doc(`
			Scans the vault's daily notes for the #unprocessed tag. In each
			tagged note, lines starting with a configured action prefix are sent
			to that prefix's sink and removed from the note, along with any
			markdown section the removal left empty. A note reduced to nothing
			is deleted.

			Notes dated after today are left alone so tomorrow's plan is not
			routed early.
		`),
		Example: heredoc.Doc(`
			vaultglass process personal
			vaultglass process personal --dry-run -v
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := state.NewState(args[0])
			if err != nil {
				return err
			}

			svc, err := process.NewService(
				s.Vault,
				s.Handler,
				s.Registry,
				s.Config.Process.Actions,
				s.Today,
				dryRun,
			)
			if err != nil {
				return err
			}

			return svc.Run()
		},
	}

	cmd.Flags().
		BoolVarP(&dryRun, "dry-run", "n", false, "Only show what would have been done.")

	return cmd
}
