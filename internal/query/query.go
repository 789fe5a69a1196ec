// Package query derives views from a ledger snapshot. Everything here is
// pure and recomputed on demand; no derived state is cached or mutated.
package query

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/model"
)

// Direction selects transactions by money flow.
type Direction int

const (
	All Direction = iota
	Credit
	Debit
)

// FilterByMerchant returns transactions whose merchant contains q,
// case-insensitively. An empty query matches everything.
func FilterByMerchant(txns []model.Transaction, q string) []model.Transaction {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return txns
	}

	var out []model.Transaction
	for _, t := range txns {
		if strings.Contains(strings.ToLower(t.Merchant), q) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByDirection returns transactions matching mode.
func FilterByDirection(txns []model.Transaction, mode Direction) []model.Transaction {
	if mode == All {
		return txns
	}

	var out []model.Transaction
	for _, t := range txns {
		if (mode == Credit) == t.IsCredit {
			out = append(out, t)
		}
	}
	return out
}

// CategoryTotals sums amounts per category. Every category of the closed
// set is present in the result; a category with no transactions reports
// zero rather than being omitted.
func CategoryTotals(txns []model.Transaction) map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal, len(model.Categories()))
	for _, c := range model.Categories() {
		totals[c] = decimal.Zero
	}
	for _, t := range txns {
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals
}

// RunningTotal is the signed sum over the ledger: credits add, debits
// subtract.
func RunningTotal(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.IsCredit {
			total = total.Add(t.Amount)
		} else {
			total = total.Sub(t.Amount)
		}
	}
	return total
}

// SpentTotal sums debit amounts only. This is the figure compared against
// a budget.
func SpentTotal(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if !t.IsCredit {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// BudgetRatio returns total/budget clamped to [0, 1] for progress display.
// A zero or negative budget reports 0.
func BudgetRatio(total, budget decimal.Decimal) float64 {
	if budget.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	ratio, _ := total.Div(budget).Float64()
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
