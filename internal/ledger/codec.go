package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/model"
)

// record is the wire form of a transaction inside the persisted JSON array.
// method and isCredit are optional and default on load, so blobs written by
// the simpler schema variant still deserialize.
type record struct {
	ID       string     `json:"id"`
	Amount   jsonAmount `json:"amount"`
	Merchant string     `json:"merchant"`
	Category string     `json:"category"`
	Method   string     `json:"method,omitempty"`
	Date     time.Time  `json:"date"`
	IsCredit bool       `json:"isCredit,omitempty"`
}

// jsonAmount marshals as a bare JSON number instead of decimal's default
// quoted string. Unmarshal accepts either form.
type jsonAmount struct {
	decimal.Decimal
}

func (a jsonAmount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// Marshal serializes transactions to the persisted JSON array form.
func Marshal(txns []model.Transaction) ([]byte, error) {
	records := make([]record, len(txns))
	for i, t := range txns {
		records[i] = record{
			ID:       t.ID,
			Amount:   jsonAmount{t.Amount},
			Merchant: t.Merchant,
			Category: string(t.Category),
			Method:   t.Method,
			Date:     t.Date,
			IsCredit: t.IsCredit,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling ledger: %w", err)
	}
	return data, nil
}

// Unmarshal deserializes a persisted JSON array. Empty input yields an
// empty ledger.
func Unmarshal(data []byte) ([]model.Transaction, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing ledger blob: %w", err)
	}

	txns := make([]model.Transaction, len(records))
	for i, r := range records {
		txns[i] = model.Transaction{
			ID:       r.ID,
			Amount:   r.Amount.Decimal,
			Merchant: r.Merchant,
			Category: model.ParseCategory(r.Category),
			Method:   r.Method,
			Date:     r.Date,
			IsCredit: r.IsCredit,
		}
	}
	return txns, nil
}
