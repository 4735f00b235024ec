package feed_parser_gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"feedhub/domain"
	"feedhub/driver/feed_http"
	"feedhub/utils/feed_sniffer"
	"feedhub/utils/logger"
	"feedhub/utils/metrics"

	"github.com/araddon/dateparse"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

const (
	acceptHeader = "application/rss+xml, application/atom+xml, application/xml, text/xml, */*"
	defaultTitle = "Untitled"
)

type feedFetcher interface {
	Fetch(ctx context.Context, rawURL string, timeout time.Duration, accept string) (*feed_http.Response, error)
}

// FeedParserGateway fetches a feed document and normalizes its items into RSSFeedEntry values.
type FeedParserGateway struct {
	fetcher feedFetcher
	timeout time.Duration
	policy  *bluemonday.Policy
	now     func() time.Time
}

func NewFeedParserGateway(fetcher feedFetcher, timeout time.Duration) *FeedParserGateway {
	return &FeedParserGateway{
		fetcher: fetcher,
		timeout: timeout,
		policy:  bluemonday.StrictPolicy(),
		now:     time.Now,
	}
}

func (g *FeedParserGateway) ParseFeed(ctx context.Context, url domain.FeedURL) ([]domain.RSSFeedEntry, error) {
	resp, err := g.fetcher.Fetch(ctx, url.String(), g.timeout, acceptHeader)
	if err != nil {
		metrics.RecordFetch("parse", "transport_error")
		return nil, err
	}
	if !resp.IsSuccess() {
		metrics.RecordFetch("parse", "http_error")
		return nil, &domain.FetchError{URL: url.String(), StatusCode: resp.StatusCode}
	}
	metrics.RecordFetch("parse", "ok")

	if _, err := feed_sniffer.Inspect(resp.Body); err != nil {
		return nil, &domain.FormatError{URL: url.String(), Cause: err}
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(resp.Body))
	if errors.Is(err, gofeed.ErrFeedTypeNotDetected) {
		// well-formed XML without an rss, rdf or feed root carries no items
		logger.Logger.InfoContext(ctx, "Document is not a feed, no entries",
			"url", url.String())
		return []domain.RSSFeedEntry{}, nil
	}
	if err != nil {
		return nil, &domain.FormatError{URL: url.String(), Cause: err}
	}

	entries := make([]domain.RSSFeedEntry, 0, len(feed.Items))
	for i, item := range feed.Items {
		entry, err := g.toEntry(ctx, item)
		if err != nil {
			logger.Logger.WarnContext(ctx, "Skipping feed item",
				"url", url.String(),
				"index", i,
				"error", err)
			continue
		}
		entries = append(entries, entry)
	}

	logger.Logger.DebugContext(ctx, "Feed parsed",
		"url", url.String(),
		"feed_type", feed.FeedType,
		"items", len(feed.Items),
		"entries", len(entries))

	return entries, nil
}

func (g *FeedParserGateway) toEntry(ctx context.Context, item *gofeed.Item) (domain.RSSFeedEntry, error) {
	if item == nil {
		return domain.RSSFeedEntry{}, fmt.Errorf("%w: empty item", domain.ErrEntrySkipped)
	}

	link := itemLink(item)
	entryID, err := domain.NewEntryID(firstNonBlank(item.GUID, item.Custom["id"], link))
	if err != nil {
		return domain.RSSFeedEntry{}, fmt.Errorf("%w: no guid, id or link", domain.ErrEntrySkipped)
	}

	return domain.RSSFeedEntry{
		Title:       g.title(item.Title),
		Link:        link,
		EntryID:     entryID,
		PublishedAt: g.publishedAt(ctx, item),
	}, nil
}

func (g *FeedParserGateway) title(raw string) string {
	title := strings.TrimSpace(html.UnescapeString(g.policy.Sanitize(raw)))
	if title == "" {
		return defaultTitle
	}
	return title
}

// publishedAt uses the first present of published and updated, falling back to now.
func (g *FeedParserGateway) publishedAt(ctx context.Context, item *gofeed.Item) time.Time {
	raw, parsed := item.Published, item.PublishedParsed
	if strings.TrimSpace(raw) == "" && parsed == nil {
		raw, parsed = item.Updated, item.UpdatedParsed
	}

	if parsed != nil {
		return *parsed
	}

	raw = strings.TrimSpace(raw)
	if raw != "" {
		t, err := dateparse.ParseAny(raw)
		if err == nil {
			return t
		}
		logger.Logger.WarnContext(ctx, "Unparsable publish date, using current time",
			"date", raw,
			"error", err)
	}

	return g.now()
}

func itemLink(item *gofeed.Item) string {
	if link := strings.TrimSpace(item.Link); link != "" {
		return link
	}
	for _, link := range item.Links {
		if link = strings.TrimSpace(link); link != "" {
			return link
		}
	}
	return ""
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
