package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PointsCache tracks gamification points. INCRBY keeps concurrent awards
// atomic without a read-modify-write cycle.
type PointsCache interface {
	Add(ctx context.Context, studentID string, points int) (int64, error)
	Get(ctx context.Context, studentID string) (int64, error)
}

type pointsCache struct {
	client *redis.Client
}

// NewPointsCache creates a new points cache.
func NewPointsCache(client *redis.Client) PointsCache {
	return &pointsCache{client: client}
}

func (c *pointsCache) key(studentID string) string {
	return fmt.Sprintf("student:%s:points", studentID)
}

func (c *pointsCache) Add(ctx context.Context, studentID string, points int) (int64, error) {
	return c.client.IncrBy(ctx, c.key(studentID), int64(points)).Result()
}

func (c *pointsCache) Get(ctx context.Context, studentID string) (int64, error) {
	total, err := c.client.Get(ctx, c.key(studentID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return total, err
}
