package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/query"
)

func newListCommand(dataDir *string) *cobra.Command {
	var (
		merchant  string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseDirection(direction)
			if err != nil {
				return err
			}

			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			txns := a.store.Transactions()
			txns = query.FilterByMerchant(txns, merchant)
			txns = query.FilterByDirection(txns, mode)

			if len(txns) == 0 {
				fmt.Println("No transactions.")
				return nil
			}

			printTransactions(txns)
			return nil
		},
	}

	cmd.Flags().StringVar(&merchant, "merchant", "", "filter by merchant substring")
	cmd.Flags().StringVar(&direction, "direction", "all", "filter by direction (all, credit, debit)")

	return cmd
}

func parseDirection(s string) (query.Direction, error) {
	switch s {
	case "all":
		return query.All, nil
	case "credit":
		return query.Credit, nil
	case "debit":
		return query.Debit, nil
	default:
		return query.All, fmt.Errorf("unknown direction %q (want all, credit or debit)", s)
	}
}

var (
	creditColor = color.New(color.FgGreen)
	debitColor  = color.New(color.FgRed)
)

func printTransactions(txns []model.Transaction) {
	for _, t := range txns {
		amount := "-" + t.Amount.StringFixed(2)
		c := debitColor
		if t.IsCredit {
			amount = "+" + t.Amount.StringFixed(2)
			c = creditColor
		}
		fmt.Printf("%s  %-12s  %-20s  %-14s  %s\n",
			t.Date.Format("2006-01-02"),
			c.Sprint(amount),
			t.Merchant,
			t.Category,
			t.ID,
		)
	}
}
