package syncer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khata-dev/khata/internal/ingest"
	"github.com/khata-dev/khata/internal/ledger"
	"github.com/khata-dev/khata/internal/msgsource"
)

// memBlob is a minimal in-memory storage.Blob counting writes.
type memBlob struct {
	data   []byte
	writes int
}

func (b *memBlob) Read() ([]byte, error)   { return b.data, nil }
func (b *memBlob) Write(data []byte) error { b.writes++; b.data = data; return nil }
func (b *memBlob) Close() error            { return nil }

func newSyncer(t *testing.T) (*Syncer, *ledger.Store, *memBlob) {
	t.Helper()
	blob := &memBlob{}
	store := ledger.New(blob, zerolog.Nop())
	require.NoError(t, store.Load())
	engine := ingest.New(store, zerolog.Nop())
	return New(store, engine, zerolog.Nop()), store, blob
}

func history() []msgsource.Message {
	return []msgsource.Message{
		{SourceID: "msg-1", Body: "Rs. 1,250.50 debited at Starbucks on 01-01"},
		{SourceID: "msg-2", Body: "Rs 5000 credited to your account"},
		{SourceID: "msg-3", Body: "Your OTP is 4521"},
		{SourceID: "msg-4", Body: "INR 450 debited at Uber"},
	}
}

func TestSyncHistory_Counts(t *testing.T) {
	s, store, _ := newSyncer(t)

	rep, err := s.SyncHistory(history())
	require.NoError(t, err)

	assert.Equal(t, 4, rep.Scanned)
	assert.Equal(t, 3, rep.Admitted)
	assert.Equal(t, 0, rep.Duplicates)
	assert.Equal(t, 1, rep.Unparseable)
	assert.Equal(t, 3, store.Len())
}

func TestSyncHistory_SingleSaveForBatch(t *testing.T) {
	s, _, blob := newSyncer(t)

	_, err := s.SyncHistory(history())
	require.NoError(t, err)
	assert.Equal(t, 1, blob.writes, "exactly one save per batch, no per-item persistence")
}

func TestSyncHistory_IdempotentResync(t *testing.T) {
	s, store, _ := newSyncer(t)

	_, err := s.SyncHistory(history())
	require.NoError(t, err)
	after := store.Transactions()

	rep, err := s.SyncHistory(history())
	require.NoError(t, err)

	assert.Equal(t, 0, rep.Admitted)
	assert.Equal(t, 3, rep.Duplicates)
	assert.Equal(t, 1, rep.Unparseable)

	again := store.Transactions()
	require.Len(t, again, len(after))
	for i := range after {
		assert.True(t, after[i].Equal(again[i]))
	}
}

func TestSyncHistory_DuplicateWithinBatch(t *testing.T) {
	s, store, _ := newSyncer(t)

	msgs := []msgsource.Message{
		{SourceID: "msg-1", Body: "Rs 100 debited at Amazon"},
		{SourceID: "msg-1", Body: "Rs 100 debited at Amazon"},
	}
	rep, err := s.SyncHistory(msgs)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Admitted)
	assert.Equal(t, 1, rep.Duplicates)
	assert.Equal(t, 1, store.Len())
}

func TestSyncHistory_EmptyBatch(t *testing.T) {
	s, _, blob := newSyncer(t)

	rep, err := s.SyncHistory(nil)
	require.NoError(t, err)
	assert.Zero(t, rep.Scanned)
	assert.Equal(t, 1, blob.writes, "the batch-closing save still runs")
}
