package store

import (
	"context"

	"github.com/google/uuid"

	"messenger/schemas"
)

// AppendMessage prepends a message to the shared pair log and returns the
// stored record. Block checks belong to the caller; the log itself accepts
// anything.
func (s *Store) AppendMessage(ctx context.Context, from, to, content string) (schemas.Message, error) {
	msg := schemas.Message{
		ID:      uuid.NewString(),
		From:    from,
		To:      to,
		Content: content,
	}
	encoded, err := json.Marshal(msg)
	if err != nil {
		return schemas.Message{}, err
	}
	if err := s.rdb.LPush(ctx, chatKey(from, to), encoded).Err(); err != nil {
		return schemas.Message{}, err
	}
	return msg, nil
}

// MessagesRange returns up to limit messages of the pair log starting at
// offset, newest-first as stored. A pair never contacted yields an empty
// slice, not an error.
func (s *Store) MessagesRange(ctx context.Context, username, withUsername string, offset, limit int64) ([]schemas.Message, error) {
	if limit <= 0 {
		return []schemas.Message{}, nil
	}

	raw, err := s.rdb.LRange(ctx, chatKey(username, withUsername), offset, offset+limit-1).Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]schemas.Message, 0, len(raw))
	for _, entry := range raw {
		var msg schemas.Message
		if err := json.UnmarshalFromString(entry, &msg); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
