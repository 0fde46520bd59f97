package store

import (
	"context"

	redis "github.com/go-redis/redis/v8"

	"messenger/schemas"
)

// EnsureRelationship lazily creates the owner's relationship record toward
// counterpart and prepends counterpart to the owner's chats-with list. This
// is the only place relationships are created. Idempotent: HSETNX decides
// atomically whether this call is the creating one, and only the creator
// pushes the list entry.
//
// The record write and the list push are two separate keys, so a crash
// between them can leave a record without a list entry. Accepted
// inconsistency window; the reverse (list entry without record) cannot
// happen.
func (s *Store) EnsureRelationship(ctx context.Context, owner, counterpart string) error {
	encoded, err := json.Marshal(schemas.Relationship{Username: counterpart})
	if err != nil {
		return err
	}

	created, err := s.rdb.HSetNX(ctx, chatsInfoKey(owner), counterpart, encoded).Result()
	if err != nil {
		return err
	}
	if !created {
		return nil
	}
	return s.rdb.LPush(ctx, chatsWithKey(owner), counterpart).Err()
}

// Block ensures a relationship exists and sets the owner's blocked flag
// toward counterpart. Directional: the counterpart's own record toward owner
// is untouched, and no unblock operation exists.
func (s *Store) Block(ctx context.Context, owner, counterpart string) error {
	if err := s.EnsureRelationship(ctx, owner, counterpart); err != nil {
		return err
	}
	encoded, err := json.Marshal(schemas.Relationship{Username: counterpart, Blocked: true})
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, chatsInfoKey(owner), counterpart, encoded).Err()
}

// GetRelationship returns the owner's record toward counterpart. A missing
// record is not an error: "never contacted" comes back as the zero record so
// callers can distinguish it from blocked.
func (s *Store) GetRelationship(ctx context.Context, owner, counterpart string) (schemas.Relationship, error) {
	raw, err := s.rdb.HGet(ctx, chatsInfoKey(owner), counterpart).Result()
	if err == redis.Nil {
		return schemas.Relationship{Username: counterpart}, nil
	}
	if err != nil {
		return schemas.Relationship{}, err
	}

	var rel schemas.Relationship
	if err := json.UnmarshalFromString(raw, &rel); err != nil {
		return schemas.Relationship{}, err
	}
	return rel, nil
}

// ChatsWithRange returns up to limit counterpart usernames from the owner's
// contact history, most-recent-contact-first.
func (s *Store) ChatsWithRange(ctx context.Context, owner string, offset, limit int64) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	return s.rdb.LRange(ctx, chatsWithKey(owner), offset, offset+limit-1).Result()
}
