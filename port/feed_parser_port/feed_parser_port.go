package feed_parser_port

import (
	"context"

	"feedhub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_parser_port.go -destination=../../mocks/mock_feed_parser_port.go -package=mocks

// FeedParserPort fetches a feed and returns its entries in document order.
// Fetch failures wrap domain.ErrUnableToFetch, unreadable bodies domain.ErrInvalidFormat.
type FeedParserPort interface {
	ParseFeed(ctx context.Context, url domain.FeedURL) ([]domain.RSSFeedEntry, error)
}
