package rate_limiter

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostRateLimiter spaces requests to the same host by at least interval.
// A non-positive interval disables limiting.
type HostRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	interval time.Duration
}

func NewHostRateLimiter(interval time.Duration) *HostRateLimiter {
	return &HostRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

func (h *HostRateLimiter) WaitForHost(ctx context.Context, urlStr string) error {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return err
	}

	host := parsedURL.Host
	if host == "" {
		return &url.Error{Op: "parse", URL: urlStr, Err: errors.New("missing host in URL")}
	}

	return h.getLimiterForHost(host).Wait(ctx)
}

// Hosts returns the number of hosts seen so far.
func (h *HostRateLimiter) Hosts() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.limiters)
}

func (h *HostRateLimiter) getLimiterForHost(host string) *rate.Limiter {
	h.mu.RLock()
	limiter, exists := h.limiters[host]
	h.mu.RUnlock()

	if exists {
		return limiter
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Double-check pattern
	if limiter, exists := h.limiters[host]; exists {
		return limiter
	}

	limit := rate.Inf
	if h.interval > 0 {
		limit = rate.Every(h.interval)
	}
	limiter = rate.NewLimiter(limit, 1)
	h.limiters[host] = limiter
	return limiter
}
