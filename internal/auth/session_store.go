package auth

import (
	"context"
	"fmt"
	"time"

	"nocturna/internal/cache"
)

const sessionKeyPrefix = "admin_session:"

// SessionStoreInterface caches which session token is current for an admin.
type SessionStoreInterface interface {
	Remember(ctx context.Context, adminID uint, sessionID string, expiresAt time.Time) error
	Lookup(ctx context.Context, adminID uint) (sessionID string, ok bool)
	Forget(ctx context.Context, adminID uint) error
}

// SessionStore keeps the current session token per admin in Redis so that
// authenticated requests do not hit the database every time.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

func sessionKey(adminID uint) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, adminID)
}

// Remember stores the session until it expires.
func (s *SessionStore) Remember(ctx context.Context, adminID uint, sessionID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return s.Forget(ctx, adminID)
	}
	return s.cache.Set(ctx, sessionKey(adminID), []byte(sessionID), ttl)
}

// Lookup returns the cached session token, if any.
func (s *SessionStore) Lookup(ctx context.Context, adminID uint) (string, bool) {
	data, err := s.cache.Get(ctx, sessionKey(adminID))
	if err != nil || data == nil {
		return "", false
	}
	return string(data), true
}

// Forget drops the cached session.
func (s *SessionStore) Forget(ctx context.Context, adminID uint) error {
	return s.cache.Delete(ctx, sessionKey(adminID))
}
