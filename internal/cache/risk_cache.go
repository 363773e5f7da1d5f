package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mindcare/internal/model"
)

// RiskCache holds the latest fused risk snapshot per student so dashboards
// avoid recomputing it on every load.
type RiskCache interface {
	Get(ctx context.Context, studentID string) (*model.RiskFusionResult, error)
	Set(ctx context.Context, result *model.RiskFusionResult) error
}

type riskCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRiskCache creates a new risk snapshot cache.
func NewRiskCache(client *redis.Client) RiskCache {
	return &riskCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *riskCache) key(studentID string) string {
	return fmt.Sprintf("student:%s:risk", studentID)
}

func (c *riskCache) Get(ctx context.Context, studentID string) (*model.RiskFusionResult, error) {
	data, err := c.client.Get(ctx, c.key(studentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.RiskFusionResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *riskCache) Set(ctx context.Context, result *model.RiskFusionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(result.StudentID), data, c.ttl).Err()
}
