package store

import (
	"context"
	"time"

	redis "github.com/go-redis/redis/v8"

	"messenger/schemas"
)

// RecordAttempt prepends a signin attempt to the user's activity log and
// trims the log to the configured retention. Both writes ride one pipeline.
func (s *Store) RecordAttempt(ctx context.Context, username string, result string) error {
	encoded, err := json.Marshal(schemas.Attempt{
		At:     time.Now().UTC().Format(time.RFC3339),
		Result: result,
	})
	if err != nil {
		return err
	}

	_, err = s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, activityKey(username), encoded)
		if s.activityRetention > 0 {
			pipe.LTrim(ctx, activityKey(username), 0, s.activityRetention-1)
		}
		return nil
	})
	return err
}

// ActivityRange returns up to limit attempts, newest-first.
func (s *Store) ActivityRange(ctx context.Context, username string, offset, limit int64) ([]schemas.Attempt, error) {
	if limit <= 0 {
		return []schemas.Attempt{}, nil
	}

	raw, err := s.rdb.LRange(ctx, activityKey(username), offset, offset+limit-1).Result()
	if err != nil {
		return nil, err
	}

	attempts := make([]schemas.Attempt, 0, len(raw))
	for _, entry := range raw {
		var attempt schemas.Attempt
		if err := json.UnmarshalFromString(entry, &attempt); err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, nil
}
