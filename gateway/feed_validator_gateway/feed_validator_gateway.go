package feed_validator_gateway

import (
	"context"
	"time"

	"feedhub/domain"
	"feedhub/driver/feed_http"
	"feedhub/utils/feed_sniffer"
	"feedhub/utils/logger"
	"feedhub/utils/metrics"
)

const acceptHeader = "application/rss+xml, application/xml, text/xml, */*"

type feedFetcher interface {
	Fetch(ctx context.Context, rawURL string, timeout time.Duration, accept string) (*feed_http.Response, error)
}

// FeedValidatorGateway is a best-effort check that a URL serves an RSS or Atom document.
type FeedValidatorGateway struct {
	fetcher feedFetcher
	timeout time.Duration
}

func NewFeedValidatorGateway(fetcher feedFetcher, timeout time.Duration) *FeedValidatorGateway {
	return &FeedValidatorGateway{fetcher: fetcher, timeout: timeout}
}

// IsValidFeed never reports fetch or parse problems as errors. It only returns an
// error when the caller's context is done.
func (g *FeedValidatorGateway) IsValidFeed(ctx context.Context, url domain.FeedURL) (bool, error) {
	resp, err := g.fetcher.Fetch(ctx, url.String(), g.timeout, acceptHeader)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		metrics.RecordFetch("validate", "transport_error")
		logger.Logger.InfoContext(ctx, "Feed validation fetch failed", "url", url.String(), "error", err)
		return false, nil
	}

	if !resp.IsSuccess() {
		metrics.RecordFetch("validate", "http_error")
		logger.Logger.InfoContext(ctx, "Feed validation got non-success status",
			"url", url.String(),
			"status", resp.StatusCode)
		return false, nil
	}
	metrics.RecordFetch("validate", "ok")

	if !feed_sniffer.HasContentTypeSignal(resp.ContentType) && !feed_sniffer.HasBodySignal(resp.Body) {
		logger.Logger.InfoContext(ctx, "Feed validation found no feed signal",
			"url", url.String(),
			"content_type", resp.ContentType)
		return false, nil
	}

	doc, err := feed_sniffer.Inspect(resp.Body)
	if err != nil {
		logger.Logger.InfoContext(ctx, "Feed validation could not parse document", "url", url.String(), "error", err)
		return false, nil
	}

	if !doc.HasFeedShape() {
		logger.Logger.InfoContext(ctx, "Feed validation found no channel, item or entry",
			"url", url.String(),
			"root", doc.Root)
		return false, nil
	}

	return true, nil
}
