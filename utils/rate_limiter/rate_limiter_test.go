package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRateLimiter_WaitForHost(t *testing.T) {
	tests := []struct {
		name    string
		urlStr  string
		wantErr bool
	}{
		{name: "valid http URL", urlStr: "http://example.com/feed.xml"},
		{name: "valid https URL", urlStr: "https://example.com/feed.xml"},
		{name: "URL without host", urlStr: "/relative/feed.xml", wantErr: true},
		{name: "unparsable URL", urlStr: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewHostRateLimiter(10 * time.Millisecond)
			err := limiter.WaitForHost(context.Background(), tt.urlStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHostRateLimiter_SpacesSameHost(t *testing.T) {
	interval := 50 * time.Millisecond
	limiter := NewHostRateLimiter(interval)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://example.com/a"))
	require.NoError(t, limiter.WaitForHost(ctx, "https://example.com/b"))
	assert.GreaterOrEqual(t, time.Since(start), interval-5*time.Millisecond)

	// a different host has its own budget
	start = time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://other.example.com/a"))
	assert.Less(t, time.Since(start), interval)
	assert.Equal(t, 2, limiter.Hosts())
}

func TestHostRateLimiter_ContextCancelled(t *testing.T) {
	limiter := NewHostRateLimiter(time.Hour)
	require.NoError(t, limiter.WaitForHost(context.Background(), "https://example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, limiter.WaitForHost(ctx, "https://example.com"))
}

func TestHostRateLimiter_Disabled(t *testing.T) {
	limiter := NewHostRateLimiter(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.WaitForHost(ctx, "https://example.com"))
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
