package indexes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/vaultglass/vaultglass/internal/moc"
	"github.com/vaultglass/vaultglass/internal/state"
)

func NewCmdIndexes() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "indexes [vault]",
		Aliases: []string{"idx", "make-indexes"},
		Short:   "Create or update yearly and monthly index files for a vault.",
		Long: heredoc.Doc(`
			Groups a vault's daily notes by year and month and writes one
			map-of-content file per group, linking every note. Text you add above
			or below the --- sentinel lines in an index file is preserved across
			runs; only the links between them are regenerated.

			Past daily notes that are still untouched copies of the daily
			template are deleted along the way, and tomorrow's note is created
			from the template if it does not exist yet.
		`),
		Example: heredoc.Doc(`
			vaultglass indexes personal
			vaultglass indexes personal --dry-run -vv
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := state.NewState(args[0])
			if err != nil {
				return err
			}

			svc := moc.NewService(s.Vault, s.Handler, s.Templater, s.Today, dryRun)
			return svc.GenerateIndexes()
		},
	}

	cmd.Flags().
		BoolVarP(&dryRun, "dry-run", "n", false, "Only show what would have been done.")

	return cmd
}
