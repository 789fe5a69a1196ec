package ledger

import (
	"fmt"

	"github.com/khata-dev/khata/internal/model"
)

// ValidationError describes a single invariant violation on a loaded or
// inserted transaction.
type ValidationError struct {
	ID          string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("transaction %s: %s", e.ID, e.Description)
}

// Validate checks ledger invariants across a set of transactions:
// non-empty unique IDs and non-negative amounts.
func Validate(txns []model.Transaction) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(txns))
	for _, t := range txns {
		if t.ID == "" {
			errs = append(errs, ValidationError{ID: t.ID, Description: "empty ID"})
			continue
		}
		if seen[t.ID] {
			errs = append(errs, ValidationError{ID: t.ID, Description: "duplicate ID"})
		}
		seen[t.ID] = true

		if t.Amount.IsNegative() {
			errs = append(errs, ValidationError{
				ID:          t.ID,
				Description: fmt.Sprintf("negative amount %s", t.Amount.String()),
			})
		}
	}
	return errs
}
