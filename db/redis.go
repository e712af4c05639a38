// db/redis.go
package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/navguard/logging"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

// RateLimit records one hit for key and reports whether it is within limit per window.
// It keeps a sliding window in a sorted set; every hit is a distinct member.
func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	now := time.Now()
	windowKey := "ratelimit:" + key

	pipe := RedisClient.TxPipeline()
	pipe.ZRemRangeByScore(ctx, windowKey, "0", strconv.FormatInt(now.Add(-per).UnixNano(), 10))
	pipe.ZAdd(ctx, windowKey, redis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
	card := pipe.ZCard(ctx, windowKey)
	pipe.PExpire(ctx, windowKey, per)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := card.Val()
	allowed := count <= int64(limit)
	if !allowed {
		logger.Debug("Rate limit window full",
			zap.String("key", windowKey),
			zap.Int64("count", count),
			zap.Int("limit", limit))
	}
	return allowed, nil
}

// unlockScript deletes a lock only while it still carries the caller's token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// LockResource takes a cluster-wide lock that expires after ttl, used to keep replicas from
// running the menu seed synchronizer concurrently. It returns the token UnlockResource needs,
// or "" when another holder has the lock.
func LockResource(ctx context.Context, resourceName string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	locked, err := RedisClient.SetNX(ctx, "lock:"+resourceName, token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire lock %s: %w", resourceName, err)
	}
	logger.Debug("Lock acquisition attempt",
		zap.String("resource", resourceName),
		zap.Bool("locked", locked))
	if !locked {
		return "", nil
	}
	return token, nil
}

// UnlockResource releases the lock if token still owns it. A lock that expired and was
// taken by someone else is left alone.
func UnlockResource(ctx context.Context, resourceName, token string) error {
	released, err := unlockScript.Run(ctx, RedisClient, []string{"lock:" + resourceName}, token).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", resourceName, err)
	}
	if released == 0 {
		logger.Warn("Lock was no longer held at release", zap.String("resource", resourceName))
	}
	return nil
}
