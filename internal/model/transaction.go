package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. Immutable once created: edits are
// not supported, only explicit deletion.
type Transaction struct {
	ID       string          // unique within the ledger; dedup keys on this
	Amount   decimal.Decimal // non-negative, minor-unit precision
	Merchant string          // title-cased display string
	Category Category
	Method   string // payment channel label: "UPI", "Cash", "Bank", ...
	Date     time.Time
	IsCredit bool // true = money received, false = money spent
}

// Equal reports field-for-field equality. Amounts compare by value rather
// than by decimal representation, dates by instant.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Amount.Equal(o.Amount) &&
		t.Merchant == o.Merchant &&
		t.Category == o.Category &&
		t.Method == o.Method &&
		t.Date.Equal(o.Date) &&
		t.IsCredit == o.IsCredit
}
