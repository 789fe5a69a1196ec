package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/config"
)

func newInitCommand(dataDir *string) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the khata data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(*dataDir, backend)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", config.BackendJSON, "storage backend (json or sqlite)")

	return cmd
}

func runInit(dir, backend string) error {
	if backend != config.BackendJSON && backend != config.BackendSQLite {
		return fmt.Errorf("unknown storage backend %q", backend)
	}

	for _, d := range []string{dir, filepath.Join(dir, inboxDir), filepath.Join(dir, inboxDir, "processed")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfgPath := filepath.Join(dir, configFile)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()
	cfg.Storage.Backend = backend
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	fmt.Printf("Initialized khata data directory at %s\n", dir)
	return nil
}
