// Package commands wires the smsledger CLI.
package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/buildinfo"
	"github.com/cleared-dev/smsledger/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	rootCmd := &cobra.Command{
		Use:     "smsledger",
		Short:   "Turn bank SMS alerts into a local transaction ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", config.FileName, "path to smsledger.yaml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	flags.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON lines")

	rootCmd.AddCommand(
		newInitCommand(),
		newScanCommand(a),
		newAddCommand(a),
		newImportCommand(a),
		newListCommand(a),
		newDeleteCommand(a),
		newRecategorizeCommand(a),
		newSummaryCommand(a),
		newMonthlyCommand(a),
		newDailyCommand(a),
		newExportCommand(a),
		newClearCommand(a),
	)

	return rootCmd
}
