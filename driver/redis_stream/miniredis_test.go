package redis_stream

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestDriver(t *testing.T, maxLen int64) (*RedisStreamDriver, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	driver := NewRedisStreamDriver(redis.NewClient(&redis.Options{Addr: mr.Addr()}), maxLen)
	t.Cleanup(func() { _ = driver.Close() })

	return driver, mr
}
