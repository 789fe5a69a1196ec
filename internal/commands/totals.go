package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/query"
)

func newTotalsCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show category totals, running total and budget usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			txns := a.store.Transactions()
			totals := query.CategoryTotals(txns)

			for _, c := range model.Categories() {
				fmt.Printf("%-14s  %12s\n", c, totals[c].StringFixed(2))
			}

			running := query.RunningTotal(txns)
			fmt.Printf("\nRunning total: %s\n", running.StringFixed(2))

			budget, err := a.cfg.MonthlyBudget()
			if err != nil {
				return err
			}
			if budget.IsPositive() {
				spent := query.SpentTotal(txns)
				ratio := query.BudgetRatio(spent, budget)
				line := fmt.Sprintf("Budget: %s of %s (%.0f%%)",
					spent.StringFixed(2), budget.StringFixed(2), ratio*100)
				if ratio >= 1 {
					color.New(color.FgRed, color.Bold).Println(line)
				} else {
					fmt.Println(line)
				}
			}
			return nil
		},
	}
}
