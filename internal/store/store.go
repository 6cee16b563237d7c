// Package store persists per-user JSON documents as opaque blobs.
//
// The tracker only ever reads and rewrites whole documents, so the contract
// is deliberately small: a blob is addressed by (user, name) and replaced
// atomically on every write. Two backends exist, a plain filesystem layout
// compatible with the original data directory and a single-table SQLite
// database.
package store

import "context"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrNotFound indicates the requested blob does not exist. Callers treat it
// as "start from defaults", not as a fault.
const ErrNotFound = constError("blob not found")

// BlobStore reads and writes whole per-user documents.
type BlobStore interface {
	// Read returns the blob contents, or ErrNotFound if it was never written.
	Read(ctx context.Context, user, name string) ([]byte, error)

	// Write replaces the blob contents. The replacement is atomic: a reader
	// never observes a partially written blob.
	Write(ctx context.Context, user, name string, data []byte) error

	// Close releases backend resources.
	Close() error
}
