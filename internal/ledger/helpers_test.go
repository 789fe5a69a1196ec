package ledger

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func txn(id, amount, merchant string, isCredit bool) model.Transaction {
	return model.Transaction{
		ID:       id,
		Amount:   dec(amount),
		Merchant: merchant,
		Category: model.CategoryOther,
		Method:   "UPI",
		Date:     date(2025, 6, 1),
		IsCredit: isCredit,
	}
}

// memBlob is an in-memory storage.Blob recording write activity.
type memBlob struct {
	data      []byte
	writes    int
	failWrite error
}

func (b *memBlob) Read() ([]byte, error) {
	if b.data == nil {
		return nil, nil
	}
	return b.data, nil
}

func (b *memBlob) Write(data []byte) error {
	if b.failWrite != nil {
		return b.failWrite
	}
	b.writes++
	b.data = append([]byte(nil), data...)
	return nil
}

func (b *memBlob) Close() error { return nil }

var errDiskFull = errors.New("disk full")

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
