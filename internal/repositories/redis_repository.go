package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository tracks refresh-token sessions by jti and a blacklist of
// revoked jtis. TTLs match the refresh-token lifetime.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

const sessionTTL = 30 * 24 * time.Hour

func (r *RedisRepository) StoreSession(ctx context.Context, jti string, userID string) error {
	return r.rdb.Set(ctx, "session:"+jti, userID, sessionTTL).Err()
}

func (r *RedisRepository) DeleteSession(ctx context.Context, jti string) error {
	return r.rdb.Del(ctx, "session:"+jti).Err()
}

func (r *RedisRepository) Blacklist(ctx context.Context, jti string) error {
	return r.rdb.Set(ctx, "blacklist:"+jti, "true", sessionTTL).Err()
}

func (r *RedisRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	exists, err := r.rdb.Exists(ctx, "blacklist:"+jti).Result()
	return exists == 1, err
}
