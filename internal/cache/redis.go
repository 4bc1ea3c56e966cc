package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pcshop-next/internal/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client
var redisPrefix string
var redisEnabled bool

// InitRedis 初始化 Redis 客户端
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		redisEnabled = false
		return nil
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	redisPrefix = strings.TrimSpace(cfg.Prefix)
	if redisPrefix == "" {
		redisPrefix = "pcshop"
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	redisEnabled = true
	return nil
}

// Enabled 判断缓存是否启用
func Enabled() bool {
	return redisEnabled && redisClient != nil
}

// Client 获取 Redis 客户端
func Client() *redis.Client {
	if !Enabled() {
		return nil
	}
	return redisClient
}

// MGetJSON 一次 MGET 批量读取，返回与 keys 等长的切片，未命中位置为 nil
func MGetJSON(ctx context.Context, keys []string) ([][]byte, error) {
	if !Enabled() || len(keys) == 0 {
		return make([][]byte, len(keys)), nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = buildKey(key)
	}
	values, err := redisClient.MGet(ctx, prefixed...).Result()
	if err != nil {
		return nil, err
	}
	payloads := make([][]byte, len(keys))
	for i, v := range values {
		if s, ok := v.(string); ok {
			payloads[i] = []byte(s)
		}
	}
	return payloads, nil
}

// SetJSONBatch 管道批量写入 JSON 缓存
func SetJSONBatch(ctx context.Context, entries map[string]interface{}, ttl time.Duration) error {
	if !Enabled() || len(entries) == 0 {
		return nil
	}
	pipe := redisClient.Pipeline()
	for key, value := range entries {
		payload, err := json.Marshal(value)
		if err != nil {
			return err
		}
		pipe.Set(ctx, buildKey(key), payload, ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Del 删除缓存
func Del(ctx context.Context, key string) error {
	if !Enabled() {
		return nil
	}
	return redisClient.Del(ctx, buildKey(key)).Err()
}

func buildKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return redisPrefix
	}
	return fmt.Sprintf("%s:%s", redisPrefix, trimmed)
}
