// Package store is the persistence layer of the messaging service: a thin,
// injected handle over Redis. Every structure it keeps is a single-key
// hash, list or expiring string, and every operation relies only on the
// single-key atomicity Redis guarantees; there are no multi-key transactions.
package store

import (
	Errors "errors"
	"sort"
	"time"

	redis "github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store-level outcomes callers translate into their own tiers.
var (
	// ErrNoSession means the session key is absent or expired.
	ErrNoSession = Errors.New("session does not exist")
	// ErrNoUser means no profile is stored under the username.
	ErrNoUser = Errors.New("user does not exist")
)

// Store is the injected Redis handle plus the few policies the store owns.
type Store struct {
	rdb *redis.Client

	sessionTTL        time.Duration
	activityRetention int64
}

// New builds a store around an existing Redis client.
func New(rdb *redis.Client, sessionTTL time.Duration, activityRetention int64) *Store {
	return &Store{
		rdb:               rdb,
		sessionTTL:        sessionTTL,
		activityRetention: activityRetention,
	}
}

const keyPrefix = "messaging-service:"

func userKey(username string) string {
	return keyPrefix + "users:" + username
}

// chatsWithKey holds the list of other users the user chats with,
// most-recent-contact-first.
func chatsWithKey(username string) string {
	return keyPrefix + "users:" + username + ":chats-with"
}

// chatsInfoKey holds the map from counterpart username to the owner's
// relationship record toward them.
func chatsInfoKey(username string) string {
	return keyPrefix + "users:" + username + ":chats-info"
}

func activityKey(username string) string {
	return keyPrefix + "users:" + username + ":activity"
}

func sessionKey(sessionID string) string {
	return keyPrefix + "sessions:" + sessionID
}

// chatKey is the shared pair log; both directions map to one key.
func chatKey(username, withUsername string) string {
	pair := []string{username, withUsername}
	sort.Strings(pair)
	return keyPrefix + "chats:" + pair[0] + "-with-" + pair[1]
}
