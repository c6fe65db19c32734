// Package tokenstore remembers revoked access-token ids until the tokens
// would have expired anyway.
package tokenstore

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/bootcamp-go/internal/config"
)

type Store interface {
	Revoke(ctx context.Context, id string, until time.Time) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

// FromConfig uses valkey when VALKEY_ADDR is set, the in-memory store
// otherwise.
func FromConfig() (Store, error) {
	if config.ValkeyAddr == "" {
		return NewMemory(), nil
	}
	store, err := NewValkey(config.ValkeyAddr)
	if err != nil {
		return nil, err
	}
	log.Printf("[tokenstore] using valkey at %s", config.ValkeyAddr)
	return store, nil
}
