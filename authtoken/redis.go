package authtoken

import (
	"context"

	"github.com/redis/go-redis/v9"
)

func RevokedKey(tokenID string) string {
	return "revoked:" + tokenID
}

// RedisRevocations is the read side of the signed-out token list that
// account-svc maintains.
type RedisRevocations struct {
	Client *redis.Client
}

func NewRedisRevocations(client *redis.Client) *RedisRevocations {
	return &RedisRevocations{Client: client}
}

var _ RevocationList = (*RedisRevocations)(nil)

func (r *RedisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := r.Client.Exists(ctx, RevokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
