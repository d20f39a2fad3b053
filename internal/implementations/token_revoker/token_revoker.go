package tokenrevoker

import (
	"context"
	"errors"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"time"

	"github.com/go-redis/redis/v9"
)

const KEY_PREFIX = "revoked-token::"

// Redis remembers revoked token IDs until the tokens expire.
type Redis struct {
	redisClient *redis.Client
}

func NewRedis(redisClient *redis.Client) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	return &Redis{redisClient: redisClient}
}

func (r *Redis) Revoke(ctx context.Context, claims user.Claims, now time.Time) error {
	ttl := claims.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return nil
	}
	return r.redisClient.Set(ctx, KEY_PREFIX+string(claims.TokenID), now.Unix(), ttl).Err()
}

func (r *Redis) IsRevoked(ctx context.Context, id user.TokenID) (bool, error) {
	err := r.redisClient.Get(ctx, KEY_PREFIX+string(id)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
