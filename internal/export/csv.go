// Package export serializes the ledger for hand-off to an external sharing
// collaborator.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/khata-dev/khata/internal/model"
)

// Header is the CSV header row, fields in the export column order.
const Header = "Date,Merchant,Category,Amount"

const dateFormat = "2006-01-02"

// WriteCSV writes one row per transaction in current ledger order, header
// row first.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		row := []string{
			t.Date.Format(dateFormat),
			t.Merchant,
			string(t.Category),
			t.Amount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
