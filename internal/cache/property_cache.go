package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pcshop-next/internal/logger"
	"github.com/pcshop-next/internal/models"
)

const propertyCacheKeyFmt = "product_properties:%d"

// PropertyLoader 批量回源加载商品特性值
type PropertyLoader func(productIDs []uint) (map[uint][]models.ProductProperty, error)

// PropertyCache 商品特性预取缓存
// 显式注入读模型构建器，TTL 来自配置；TTL 为 0 或 Redis 未启用时直接回源。
type PropertyCache struct {
	ttl time.Duration
}

// NewPropertyCache 创建特性缓存
func NewPropertyCache(ttlSeconds int) *PropertyCache {
	if ttlSeconds < 0 {
		ttlSeconds = 0
	}
	return &PropertyCache{ttl: time.Duration(ttlSeconds) * time.Second}
}

// Load 获取各商品的特性值列表，未命中的商品批量回源并写入缓存
// 整批一次 MGET 读取，回填走管道，往返次数与商品数无关。
func (c *PropertyCache) Load(ctx context.Context, productIDs []uint, loader PropertyLoader) (map[uint][]models.ProductProperty, error) {
	if loader == nil {
		return map[uint][]models.ProductProperty{}, nil
	}
	if c == nil || c.ttl <= 0 || !Enabled() {
		return loader(productIDs)
	}

	keys := make([]string, len(productIDs))
	for i, id := range productIDs {
		keys[i] = fmt.Sprintf(propertyCacheKeyFmt, id)
	}
	payloads, err := MGetJSON(ctx, keys)
	if err != nil {
		logger.Warnw("property_cache_mget_failed", "count", len(keys), "error", err)
		payloads = make([][]byte, len(keys))
	}

	result := make(map[uint][]models.ProductProperty, len(productIDs))
	missing := make([]uint, 0, len(productIDs))
	for i, id := range productIDs {
		if payloads[i] == nil {
			missing = append(missing, id)
			continue
		}
		var cached []models.ProductProperty
		if err := json.Unmarshal(payloads[i], &cached); err != nil {
			logger.Warnw("property_cache_decode_failed", "product_id", id, "error", err)
			missing = append(missing, id)
			continue
		}
		result[id] = cached
	}

	if len(missing) == 0 {
		return result, nil
	}

	loaded, err := loader(missing)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]interface{}, len(missing))
	for _, id := range missing {
		properties := loaded[id]
		if properties == nil {
			properties = []models.ProductProperty{}
		}
		result[id] = properties
		entries[fmt.Sprintf(propertyCacheKeyFmt, id)] = properties
	}
	if err := SetJSONBatch(ctx, entries, c.ttl); err != nil {
		logger.Warnw("property_cache_set_failed", "count", len(entries), "error", err)
	}
	return result, nil
}

// InvalidateProduct 商品特性变更后失效对应缓存
func (c *PropertyCache) InvalidateProduct(ctx context.Context, productID uint) {
	if c == nil || c.ttl <= 0 || !Enabled() {
		return
	}
	if err := Del(ctx, fmt.Sprintf(propertyCacheKeyFmt, productID)); err != nil {
		logger.Warnw("property_cache_del_failed", "product_id", productID, "error", err)
	}
}
