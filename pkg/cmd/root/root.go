package root

import (
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaultglass/vaultglass/internal/constants"
	"github.com/vaultglass/vaultglass/pkg/cmd/indexes"
	"github.com/vaultglass/vaultglass/pkg/cmd/initialize"
	processcmd "github.com/vaultglass/vaultglass/pkg/cmd/process"
	"github.com/vaultglass/vaultglass/pkg/cmd/vaults"
)

var verbosity int

func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vaultglass",
		Aliases: []string{"vg"},
		Version: constants.Version,
		Short:   "Maintain daily note indexes and route note lines to other apps.",
		Long: heredoc.Doc(`
			vaultglass keeps a vault of date-named daily notes tidy. It builds
			yearly and monthly index files that link to every daily note, and it
			scans notes tagged #unprocessed for task and journal lines, sending
			them to the apps configured in the action map and rewriting the note
			without them.
		`),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(verbosity)
		},
	}

	cmd.PersistentFlags().
		CountVarP(&verbosity, "verbose", "v", "Increase logging detail. Repeat for debug output.")
	cmd.PersistentFlags().
		String("as-of", "", "Treat this date as today. Accepts most common date formats.")
	viper.BindPFlag("as_of", cmd.PersistentFlags().Lookup("as-of"))

	cmd.AddCommand(
		initialize.NewCmdInit(),
		vaults.NewCmdVaults(),
		indexes.NewCmdIndexes(),
		processcmd.NewCmdProcess(),
	)

	return cmd
}

func configureLogging(verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func Execute() {
	cmd := NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
