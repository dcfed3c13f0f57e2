package helpers

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func presenceKey(userID int64) string {
	return "user:online:" + strconv.FormatInt(userID, 10)
}

// SetPresence mirrors the connection-state flag into redis so chat views can
// show who is online without hitting postgres.
func SetPresence(ctx context.Context, rdb *redis.Client, userID int64, online bool, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	if !online {
		return rdb.Del(ctx, presenceKey(userID)).Err()
	}
	return rdb.Set(ctx, presenceKey(userID), "1", ttl).Err()
}

// IsOnline reports whether the presence key exists. Errors degrade to offline.
func IsOnline(ctx context.Context, rdb *redis.Client, userID int64) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, presenceKey(userID)).Result()
	return err == nil && n > 0
}
