package feed_http

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"feedhub/config"
	"feedhub/domain"
	"feedhub/utils/rate_limiter"
)

var ErrBodyTooLarge = errors.New("response body exceeds size limit")

// Response is a fully read HTTP response.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher performs bounded GET requests for feed documents, spacing requests per host.
type Fetcher struct {
	client       *http.Client
	limiter      *rate_limiter.HostRateLimiter
	userAgent    string
	maxBodyBytes int64
}

func NewFetcher(cfg config.FetchConfig, limiter *rate_limiter.HostRateLimiter) *Fetcher {
	return NewFetcherWithClient(createHTTPClient(), limiter, cfg.UserAgent, cfg.MaxBodyBytes)
}

func NewFetcherWithClient(client *http.Client, limiter *rate_limiter.HostRateLimiter, userAgent string, maxBodyBytes int64) *Fetcher {
	return &Fetcher{
		client:       client,
		limiter:      limiter,
		userAgent:    userAgent,
		maxBodyBytes: maxBodyBytes,
	}
}

// Fetch GETs rawURL within timeout. Transport failures, deadline expiry and oversize bodies
// return a *domain.FetchError; any HTTP status is returned to the caller to classify.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, timeout time.Duration, accept string) (*Response, error) {
	if f.limiter != nil {
		if err := f.limiter.WaitForHost(ctx, rawURL); err != nil {
			return nil, &domain.FetchError{URL: rawURL, Cause: fmt.Errorf("rate limiting failed: %w", err)}
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: rawURL, Cause: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: rawURL, Cause: err}
	}
	defer resp.Body.Close()

	body, err := f.readBody(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{URL: rawURL, StatusCode: resp.StatusCode, Cause: err}
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func (f *Fetcher) readBody(r io.Reader) ([]byte, error) {
	if f.maxBodyBytes <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, f.maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

func createHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	// Per-request deadlines come from the caller's context.
	return &http.Client{Transport: transport}
}
