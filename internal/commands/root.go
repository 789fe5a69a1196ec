// Package commands wires the CLI. Commands are the UI collaborator of the
// core: they read through the query layer and write only through addEntry,
// deleteTransaction and syncHistory.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "khata",
		Short:   "Local expense ledger with bank-message ingestion",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")

	rootCmd.AddCommand(newInitCommand(&dataDir))
	rootCmd.AddCommand(newAddCommand(&dataDir))
	rootCmd.AddCommand(newRmCommand(&dataDir))
	rootCmd.AddCommand(newListCommand(&dataDir))
	rootCmd.AddCommand(newTotalsCommand(&dataDir))
	rootCmd.AddCommand(newSyncCommand(&dataDir))
	rootCmd.AddCommand(newExportCommand(&dataDir))
	rootCmd.AddCommand(newLogCommand(&dataDir))

	return rootCmd
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".khata"
	}
	return filepath.Join(home, ".khata")
}
