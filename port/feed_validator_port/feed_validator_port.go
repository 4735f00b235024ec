package feed_validator_port

import (
	"context"

	"feedhub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_validator_port.go -destination=../../mocks/mock_feed_validator_port.go -package=mocks

// FeedValidatorPort is the advisory pre-flight check run at registration.
// Network and parse failures report false; an error means the check itself could not run.
type FeedValidatorPort interface {
	IsValidFeed(ctx context.Context, url domain.FeedURL) (bool, error)
}
