package feedbackmark

import (
	"context"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
)

var _ Store = (*redisStore)(nil)

const markKeyPrefix = "recruitdesk:feedbackmarks:"

type redisStore struct {
	client *goredis.Client
}

// NewRedisStore creates a Redis-backed mark store using one set per
// interviewer. Marks survive process restarts, which is all the durability
// an advisory cache needs.
func NewRedisStore(client *goredis.Client) Store {
	return &redisStore{client: client}
}

func markKey(interviewerID int64) string {
	return markKeyPrefix + strconv.FormatInt(interviewerID, 10)
}

func (s *redisStore) Mark(ctx context.Context, interviewerID, interviewID int64) error {
	if err := s.client.SAdd(ctx, markKey(interviewerID), interviewID).Err(); err != nil {
		return fmt.Errorf("redis: add feedback mark: %w", err)
	}
	return nil
}

func (s *redisStore) IsMarked(ctx context.Context, interviewerID, interviewID int64) (bool, error) {
	marked, err := s.client.SIsMember(ctx, markKey(interviewerID), interviewID).Result()
	if err != nil {
		return false, fmt.Errorf("redis: check feedback mark: %w", err)
	}
	return marked, nil
}

func (s *redisStore) Clear(ctx context.Context, interviewerID int64) error {
	if err := s.client.Del(ctx, markKey(interviewerID)).Err(); err != nil {
		return fmt.Errorf("redis: clear feedback marks: %w", err)
	}
	return nil
}
