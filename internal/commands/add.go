package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/ledger"
	"github.com/khata-dev/khata/internal/model"
)

func newAddCommand(dataDir *string) *cobra.Command {
	var (
		amountStr string
		merchant  string
		category  string
		method    string
		dateStr   string
		isCredit  bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a manual transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}

			date := time.Now()
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", dateStr, err)
				}
			}

			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			t, err := a.store.AddEntry(ledger.EntryParams{
				Amount:   amount,
				Merchant: merchant,
				Category: model.ParseCategory(category),
				Method:   method,
				Date:     date,
				IsCredit: isCredit,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added %s  %s  %s\n", t.ID, t.Merchant, t.Amount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "transaction amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&merchant, "merchant", "", "merchant name")
	cmd.Flags().StringVar(&category, "category", string(model.CategoryOther), "category")
	cmd.Flags().StringVar(&method, "method", "Cash", "payment method")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&isCredit, "credit", false, "money received rather than spent")

	return cmd
}
