package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/export"
)

func newExportCommand(dataDir *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			return export.WriteCSV(w, a.store.Transactions())
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write to a file instead of stdout")

	return cmd
}
