package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pcshop-next/internal/models"
)

func TestPropertyCacheLoad_BypassWithoutRedis(t *testing.T) {
	cache := NewPropertyCache(60)

	calls := 0
	loader := func(productIDs []uint) (map[uint][]models.ProductProperty, error) {
		calls++
		result := make(map[uint][]models.ProductProperty, len(productIDs))
		for _, id := range productIDs {
			result[id] = []models.ProductProperty{{ProductID: id, Value: "16GB"}}
		}
		return result, nil
	}

	// Redis 未启用，每次都回源
	for i := 0; i < 2; i++ {
		result, err := cache.Load(context.Background(), []uint{1, 2}, loader)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(result) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(result))
		}
	}
	if calls != 2 {
		t.Fatalf("expected loader called per load without redis, got %d calls", calls)
	}
}

func TestPropertyCacheLoad_NilLoader(t *testing.T) {
	cache := NewPropertyCache(60)
	result, err := cache.Load(context.Background(), []uint{1}, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(result))
	}
}

func TestMGetJSON_DisabledReportsAllMisses(t *testing.T) {
	keys := []string{"a", "b", "c"}
	payloads, err := MGetJSON(context.Background(), keys)
	if err != nil {
		t.Fatalf("mget failed: %v", err)
	}
	if len(payloads) != len(keys) {
		t.Fatalf("expected %d payload slots, got %d", len(keys), len(payloads))
	}
	for i, p := range payloads {
		if p != nil {
			t.Fatalf("expected miss at %d, got %q", i, p)
		}
	}
}

func TestSetJSONBatch_DisabledNoop(t *testing.T) {
	entries := map[string]interface{}{"k": []int{1, 2}}
	if err := SetJSONBatch(context.Background(), entries, time.Minute); err != nil {
		t.Fatalf("expected noop without redis, got %v", err)
	}
}
