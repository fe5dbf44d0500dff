package storage

import (
	"context"
	"time"

	"foodrun/account-svc/internal/service"
	"foodrun/authtoken"

	"github.com/redis/go-redis/v9"
)

// RedisDenylist remembers signed-out token ids until the tokens would have
// expired anyway.
type RedisDenylist struct {
	Client *redis.Client
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{Client: client}
}

var (
	_ service.TokenDenylist    = (*RedisDenylist)(nil)
	_ authtoken.RevocationList = (*RedisDenylist)(nil)
)

func (c *RedisDenylist) key(tokenID string) string {
	return authtoken.RevokedKey(tokenID)
}

func (c *RedisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return c.Client.Set(ctx, c.key(tokenID), "1", ttl).Err()
}

func (c *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	res, err := c.Client.Exists(ctx, c.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}
