package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"storewatch/internal/cache"
)

const revokedTokenKeyPrefix = "revoked_session:"

// RevocationStoreInterface records signed-out tokens until they would have
// expired anyway.
type RevocationStoreInterface interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RevocationStore keeps revoked token digests in Redis.
type RevocationStore struct {
	cache *cache.Client
}

// Ensure RevocationStore implements RevocationStoreInterface
var _ RevocationStoreInterface = (*RevocationStore)(nil)

// NewRevocationStore creates a new revocation store.
func NewRevocationStore(cache *cache.Client) *RevocationStore {
	return &RevocationStore{cache: cache}
}

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedTokenKeyPrefix + hex.EncodeToString(sum[:])
}

// Revoke marks token as signed out for ttl.
func (s *RevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return s.cache.Set(ctx, revokedKey(token), []byte("1"), ttl)
}

// IsRevoked checks the revocation list. A cache outage reads as not revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	data, err := s.cache.Get(ctx, revokedKey(token))
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
