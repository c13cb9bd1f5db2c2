package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "http://localhost"); err == nil {
		t.Error("NewRedisCache should reject a non-redis URL")
	}
}

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	if IsRetryable(classify(redis.Nil)) {
		t.Error("redis.Nil should not be retryable")
	}
	if IsRetryable(classify(context.Canceled)) {
		t.Error("context cancellation should not be retryable")
	}
	if !IsRetryable(classify(errors.New("dial tcp: connection refused"))) {
		t.Error("transport errors should be retryable")
	}
}

// TestRedisCache runs against a live server when AMOOR_TEST_REDIS_URL is set.
func TestRedisCache(t *testing.T) {
	url := os.Getenv("AMOOR_TEST_REDIS_URL")
	if url == "" {
		t.Skip("AMOOR_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, url)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	key := "amoor:test:" + Hash([]byte(t.Name()))
	t.Cleanup(func() { _ = c.Delete(ctx, key) })

	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Fatalf("Get before Set = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("doc"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(got) != "doc" {
		t.Fatalf("Get = %q, hit %v, err %v", got, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get after Delete should miss")
	}
}
