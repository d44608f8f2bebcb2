package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/ports/output"
)

var _ output.DashboardCache = (*DashboardCache)(nil)

// DashboardCache keeps the grouped-by-day dashboard as one JSON value.
type DashboardCache struct {
	redisClient *redis.Client
	storageKey  string
}

func NewDashboardCache(client *redis.Client) *DashboardCache {
	return &DashboardCache{
		redisClient: client,
		storageKey:  "events:by-day",
	}
}

func (c *DashboardCache) Get(ctx context.Context) ([]entities.DayGroup, bool, error) {
	val, err := c.redisClient.Get(ctx, c.storageKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	var groups []entities.DayGroup
	if err := json.Unmarshal([]byte(val), &groups); err != nil {
		return nil, false, err
	}
	return groups, true, nil
}

func (c *DashboardCache) Set(ctx context.Context, groups []entities.DayGroup, ttl time.Duration) error {
	jsonVal, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	return c.redisClient.Set(ctx, c.storageKey, string(jsonVal), ttl).Err()
}

func (c *DashboardCache) Invalidate(ctx context.Context) error {
	return c.redisClient.Del(ctx, c.storageKey).Err()
}

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
