package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"foodrun/spend-svc/internal/domain"
	"foodrun/spend-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client}
}

var _ service.SpendCache = (*RedisCache)(nil)

func dailyKey(userID, date string) string {
	return fmt.Sprintf("spend:daily:%s:%s", userID, date)
}

func (c *RedisCache) Get(ctx context.Context, userID, date string) (*domain.DailySpend, error) {
	fields, err := c.Client.HGetAll(ctx, dailyKey(userID, date)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	total, err := strconv.ParseFloat(fields["total"], 64)
	if err != nil {
		return nil, err
	}
	orders, err := strconv.Atoi(fields["orders"])
	if err != nil {
		return nil, err
	}
	return &domain.DailySpend{Date: date, Total: total, Orders: orders}, nil
}

func (c *RedisCache) Set(ctx context.Context, userID string, spend *domain.DailySpend, ttl time.Duration) error {
	key := dailyKey(userID, spend.Date)
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"total":  spend.Total,
			"orders": spend.Orders,
		})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}
