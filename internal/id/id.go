// Package id generates ledger entry IDs for manual entries. Message-derived
// entries never come here: their ID is the source message identity.
package id

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewEntryID returns a ULID derived from t. ULIDs encode the creation
// timestamp in their prefix, so manual entry IDs sort chronologically and
// never collide with each other or with message identities.
func NewEntryID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}

// Timestamp recovers the creation time encoded in an entry ID. The second
// return value is false for IDs that are not ULIDs (message-derived ones).
func Timestamp(entryID string) (time.Time, bool) {
	u, err := ulid.ParseStrict(entryID)
	if err != nil {
		return time.Time{}, false
	}
	return ulid.Time(u.Time()), true
}
