package ingest

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khata-dev/khata/internal/ledger"
	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/parser"
)

// memBlob is a minimal in-memory storage.Blob.
type memBlob struct {
	data   []byte
	writes int
}

func (b *memBlob) Read() ([]byte, error)   { return b.data, nil }
func (b *memBlob) Write(data []byte) error { b.writes++; b.data = data; return nil }
func (b *memBlob) Close() error            { return nil }

func newEngine(t *testing.T) (*Engine, *ledger.Store, *memBlob) {
	t.Helper()
	blob := &memBlob{}
	store := ledger.New(blob, zerolog.Nop())
	require.NoError(t, store.Load())
	return New(store, zerolog.Nop()), store, blob
}

func debitCandidate(amount string) parser.Candidate {
	return parser.Candidate{
		Amount:   decimal.RequireFromString(amount),
		Merchant: "Starbucks",
		IsCredit: false,
	}
}

func TestIngest_AdmitsOncePerSourceID(t *testing.T) {
	engine, store, _ := newEngine(t)

	admitted, err := engine.Ingest(debitCandidate("1250.50"), "msg-42", false)
	require.NoError(t, err)
	assert.True(t, admitted)

	// Second delivery of the same message is an idempotent no-op.
	admitted, err = engine.Ingest(debitCandidate("1250.50"), "msg-42", false)
	require.NoError(t, err)
	assert.False(t, admitted)
	assert.Equal(t, 1, store.Len())
}

func TestIngest_DebitDefaults(t *testing.T) {
	engine, store, _ := newEngine(t)

	_, err := engine.Ingest(debitCandidate("100"), "msg-1", false)
	require.NoError(t, err)

	txns := store.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "msg-1", txns[0].ID, "id equals source identity")
	assert.Equal(t, model.CategoryOther, txns[0].Category)
	assert.Equal(t, "UPI", txns[0].Method)
	assert.False(t, txns[0].IsCredit)
}

func TestIngest_CreditDefaultsToIncome(t *testing.T) {
	engine, store, _ := newEngine(t)

	cand := parser.Candidate{
		Amount:   decimal.RequireFromString("5000"),
		Merchant: "Bank Alert",
		IsCredit: true,
	}
	_, err := engine.Ingest(cand, "msg-2", false)
	require.NoError(t, err)

	txns := store.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, model.CategoryIncome, txns[0].Category)
	assert.Equal(t, "Bank", txns[0].Method)
	assert.True(t, txns[0].IsCredit)
}

func TestIngest_SilentSkipsPersistence(t *testing.T) {
	engine, _, blob := newEngine(t)

	_, err := engine.Ingest(debitCandidate("10"), "msg-1", true)
	require.NoError(t, err)
	assert.Zero(t, blob.writes)

	_, err = engine.Ingest(debitCandidate("20"), "msg-2", false)
	require.NoError(t, err)
	assert.Equal(t, 1, blob.writes)
}

func TestIngest_EmptySourceIDRejected(t *testing.T) {
	engine, store, _ := newEngine(t)

	_, err := engine.Ingest(debitCandidate("10"), "", false)
	require.Error(t, err)
	assert.Zero(t, store.Len())
}
