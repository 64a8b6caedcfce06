// Package state persists small pieces of durable client state, most
// importantly the session token, in the local database.
package state

import "context"

// TokenKey is the fixed key under which the session token is stored.
const TokenKey = "session_token"

type Repository interface {
	// Get returns the value for key, or ("", nil) when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
