package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/synclog"
)

func newLogCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show past sync runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := synclog.Read(*dataDir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No sync runs recorded.")
				return nil
			}

			for _, e := range entries {
				fmt.Printf("%s  %-40s  scanned %d  admitted %d  dup %d  unparseable %d\n",
					e.Timestamp.Format("2006-01-02 15:04"),
					e.Source,
					e.Scanned, e.Admitted, e.Duplicates, e.Unparseable)
			}
			return nil
		},
	}
}
