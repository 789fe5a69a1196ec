package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			// Deleting an absent id is a defined no-op; retries stay safe.
			if err := a.store.RemoveByID(args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}
