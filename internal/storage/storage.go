// Package storage defines the persistence port for the ledger: a single
// named key holding one serialized snapshot, overwritten whole on every
// save. Backends live in the subpackages.
package storage

// Blob reads and writes the durable ledger snapshot.
//
// Read returns nil data and nil error when nothing has been stored yet;
// absence of prior data is not a failure. Write replaces the stored snapshot
// atomically: a reader never observes a partial write.
type Blob interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Close() error
}
