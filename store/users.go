package store

import (
	"context"

	redis "github.com/go-redis/redis/v8"

	"messenger/schemas"
)

const profileField = "profile"

// UserExists reports whether a profile is stored under username.
func (s *Store) UserExists(ctx context.Context, username string) (bool, error) {
	return s.rdb.HExists(ctx, userKey(username), profileField).Result()
}

// SetProfile stores the user profile record. The caller is responsible for
// the username being free; SetProfile itself overwrites.
func (s *Store) SetProfile(ctx context.Context, profile schemas.Profile) error {
	encoded, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, userKey(profile.Username), profileField, encoded).Err()
}

// GetProfile returns the stored profile, or ErrNoUser.
func (s *Store) GetProfile(ctx context.Context, username string) (schemas.Profile, error) {
	raw, err := s.rdb.HGet(ctx, userKey(username), profileField).Result()
	if err == redis.Nil {
		return schemas.Profile{}, ErrNoUser
	}
	if err != nil {
		return schemas.Profile{}, err
	}

	var profile schemas.Profile
	if err := json.UnmarshalFromString(raw, &profile); err != nil {
		return schemas.Profile{}, err
	}
	return profile, nil
}
