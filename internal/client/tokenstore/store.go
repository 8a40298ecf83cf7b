// Package tokenstore keeps the single admin session token.
//
// A store holds at most one token under the fixed key "authToken". Writes
// replace any previous value and never check the token's shape. Reads are
// best effort: a store that cannot be read reports the token as absent.
package tokenstore

import "context"

// Store is implemented by every token holder.
type Store interface {
	Set(ctx context.Context, token string) error
	Get(ctx context.Context) (string, bool)
	Clear(ctx context.Context) error
	Has(ctx context.Context) bool
}
