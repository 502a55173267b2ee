// Package session keeps the small per-visitor state a server-rendered flow
// needs between two requests: one-shot flash notices and the pending
// redirect target recorded before a login round-trip.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CookieName identifies the anonymous visitor cookie keying the bag.
const CookieName = "sid"

const (
	noticeKeyPrefix   = "visitor:notice:"
	redirectKeyPrefix = "visitor:redirect:"
	defaultTTL        = 30 * time.Minute
)

// Store manages visitor state in Redis. Every value is one-shot: reading it
// consumes it.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a new visitor state store.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// NewVisitorID generates a random identifier for the visitor cookie.
func NewVisitorID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// SetNotice stores a flash notice shown on the visitor's next render.
func (s *Store) SetNotice(ctx context.Context, sid, msg string) error {
	return s.rdb.Set(ctx, noticeKeyPrefix+sid, msg, s.ttl).Err()
}

// PopNotice returns and clears the pending flash notice, if any.
func (s *Store) PopNotice(ctx context.Context, sid string) (string, error) {
	return s.pop(ctx, noticeKeyPrefix+sid)
}

// SetPendingRedirect records where the visitor was headed before being sent
// to the login page.
func (s *Store) SetPendingRedirect(ctx context.Context, sid, target string) error {
	return s.rdb.Set(ctx, redirectKeyPrefix+sid, target, s.ttl).Err()
}

// PopPendingRedirect returns and clears the recorded redirect target.
func (s *Store) PopPendingRedirect(ctx context.Context, sid string) (string, error) {
	return s.pop(ctx, redirectKeyPrefix+sid)
}

func (s *Store) pop(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}
