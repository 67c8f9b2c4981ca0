// Package cartstore persists the shopper's serialized cart blob.
//
// The cart lives under a single well-known key and is always read and
// rewritten whole. Implementations do not interpret the blob.
package cartstore

import "context"

// Key is the well-known storage key for the cart blob.
const Key = "cart"

// Store reads and writes the cart blob.
type Store interface {
	// Load returns the current blob, or nil when none has been written.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the blob in a single write.
	Save(ctx context.Context, blob []byte) error
}
