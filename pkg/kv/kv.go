// Package kv provides the durable key-value storage used for device-local
// state: the persisted cart lines, the theme preference, and the restored
// access token.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence surface shared by the cart, theme, and account
// token state. Set overwrites unconditionally.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}
