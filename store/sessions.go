package store

import (
	"context"

	"github.com/aidarkhanov/nanoid/v2"
	redis "github.com/go-redis/redis/v8"
)

// Session tokens are opaque; nothing is derivable from them.
const (
	sessionIDAlphabet = nanoid.DefaultAlphabet
	sessionIDLength   = 30
)

// CreateSession mints a session token for username and persists it with the
// configured TTL. Expiry is enforced by Redis, not by sweeping.
func (s *Store) CreateSession(ctx context.Context, username string) (string, error) {
	sessionID, err := nanoid.GenerateString(sessionIDAlphabet, sessionIDLength)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKey(sessionID), username, s.sessionTTL).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

// ResolveSession maps a session token to its username, or ErrNoSession. Pure
// lookup, no side effects.
func (s *Store) ResolveSession(ctx context.Context, sessionID string) (string, error) {
	username, err := s.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

// DeleteSession removes the session key. Deleting an absent key is not an
// error at this level; existence is the caller's concern.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}
