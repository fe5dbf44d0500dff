package storage

import (
	"context"
	"time"

	"foodrun/delivery-worker/internal/domain"
	"foodrun/delivery-worker/internal/service"

	"github.com/redis/go-redis/v9"
)

const (
	dueKey   = "deliveries:due"
	ownerKey = "deliveries:owner"
)

// RedisDueSet scores each order id by its due time in unix milliseconds and
// keeps the owning user alongside in a hash.
type RedisDueSet struct {
	Client *redis.Client
}

func NewRedisDueSet(client *redis.Client) *RedisDueSet {
	return &RedisDueSet{Client: client}
}

var _ service.DueSet = (*RedisDueSet)(nil)

func (d *RedisDueSet) Add(ctx context.Context, delivery domain.Delivery) error {
	_, err := d.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, dueKey, redis.Z{
			Score:  float64(delivery.Due.UnixMilli()),
			Member: delivery.OrderID,
		})
		pipe.HSet(ctx, ownerKey, delivery.OrderID, delivery.UserID)
		return nil
	})
	return err
}

func (d *RedisDueSet) Remove(ctx context.Context, orderID string) error {
	_, err := d.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, dueKey, orderID)
		pipe.HDel(ctx, ownerKey, orderID)
		return nil
	})
	return err
}

// All returns every pending delivery, soonest first.
func (d *RedisDueSet) All(ctx context.Context) ([]domain.Delivery, error) {
	entries, err := d.Client.ZRangeWithScores(ctx, dueKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []domain.Delivery{}, nil
	}

	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.Member.(string)
	}
	owners, err := d.Client.HMGet(ctx, ownerKey, ids...).Result()
	if err != nil {
		return nil, err
	}

	deliveries := make([]domain.Delivery, len(entries))
	for i, entry := range entries {
		owner, _ := owners[i].(string)
		deliveries[i] = domain.Delivery{
			OrderID: ids[i],
			UserID:  owner,
			Due:     time.UnixMilli(int64(entry.Score)),
		}
	}
	return deliveries, nil
}
