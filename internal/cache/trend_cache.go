package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mindcare/internal/model"
)

// TrendCache holds the computed mood trend summary per student. Invalidated
// whenever a new mood entry lands.
type TrendCache interface {
	Get(ctx context.Context, studentID string) (*model.MoodTrendSummary, error)
	Set(ctx context.Context, studentID string, summary *model.MoodTrendSummary) error
	Invalidate(ctx context.Context, studentID string) error
}

type trendCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrendCache creates a new mood trend cache.
func NewTrendCache(client *redis.Client) TrendCache {
	return &trendCache{
		client: client,
		ttl:    time.Hour,
	}
}

func (c *trendCache) key(studentID string) string {
	return fmt.Sprintf("student:%s:trend", studentID)
}

func (c *trendCache) Get(ctx context.Context, studentID string) (*model.MoodTrendSummary, error) {
	data, err := c.client.Get(ctx, c.key(studentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary model.MoodTrendSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *trendCache) Set(ctx context.Context, studentID string, summary *model.MoodTrendSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(studentID), data, c.ttl).Err()
}

func (c *trendCache) Invalidate(ctx context.Context, studentID string) error {
	return c.client.Del(ctx, c.key(studentID)).Err()
}
