package register_feed_usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedhub/domain"
	"feedhub/port/event_publisher_port"
	"feedhub/port/feed_store_port"
	"feedhub/port/feed_validator_port"
	"feedhub/utils/logger"
	"feedhub/utils/metrics"

	"github.com/google/uuid"
)

const (
	msgDuplicateURL = "This feed URL has already been registered."
	msgInvalidFeed  = "The provided URL does not point to a valid RSS feed."
)

type RegisterFeedUsecase struct {
	feedRepo       feed_store_port.FeedRepositoryPort
	validator      feed_validator_port.FeedValidatorPort
	eventPublisher event_publisher_port.EventPublisherPort
	now            func() time.Time
}

func NewRegisterFeedUsecase(
	feedRepo feed_store_port.FeedRepositoryPort,
	validator feed_validator_port.FeedValidatorPort,
	eventPublisher event_publisher_port.EventPublisherPort,
) *RegisterFeedUsecase {
	return &RegisterFeedUsecase{
		feedRepo:       feedRepo,
		validator:      validator,
		eventPublisher: eventPublisher,
		now:            time.Now,
	}
}

// Execute validates, persists and announces a new feed subscription.
// Rejections are *domain.ValidationError; duplicates also match domain.ErrDuplicateFeedURL
// and unusable sources domain.ErrInvalidFeed.
func (u *RegisterFeedUsecase) Execute(ctx context.Context, ownerID uuid.UUID, rawName, rawURL string) (*domain.Feed, error) {
	feed, err := u.register(ctx, ownerID, rawName, rawURL)
	switch {
	case err == nil:
		metrics.RecordRegistration("registered")
	case errors.Is(err, domain.ErrValidation):
		metrics.RecordRegistration("rejected")
	default:
		metrics.RecordRegistration("error")
	}
	return feed, err
}

func (u *RegisterFeedUsecase) register(ctx context.Context, ownerID uuid.UUID, rawName, rawURL string) (*domain.Feed, error) {
	if ownerID == uuid.Nil {
		return nil, &domain.ValidationError{Field: "owner_id", Rule: "required", Message: "Feed owner is required."}
	}

	name, err := domain.NewFeedName(rawName)
	if err != nil {
		return nil, err
	}
	url, err := domain.NewFeedURL(rawURL)
	if err != nil {
		return nil, err
	}

	_, err = u.feedRepo.FindFeedByURL(ctx, url)
	switch {
	case err == nil:
		logger.Logger.InfoContext(ctx, "Feed registration rejected, url already registered", "url", url.String())
		return nil, duplicateURLError(url)
	case !errors.Is(err, domain.ErrFeedNotFound):
		logger.Logger.ErrorContext(ctx, "Failed to look up feed by url", "url", url.String(), "error", err)
		return nil, fmt.Errorf("find feed by url: %w", err)
	}

	valid, err := u.validator.IsValidFeed(ctx, url)
	if err != nil {
		logger.Logger.WarnContext(ctx, "Feed validation could not complete", "url", url.String(), "error", err)
		return nil, &domain.ValidationError{
			Field:   "url",
			Rule:    "valid_feed",
			Message: "Unable to validate RSS feed: " + err.Error(),
			Value:   url.String(),
			Cause:   domain.ErrInvalidFeed,
		}
	}
	if !valid {
		logger.Logger.InfoContext(ctx, "Feed registration rejected, not a feed", "url", url.String())
		return nil, &domain.ValidationError{
			Field:   "url",
			Rule:    "valid_feed",
			Message: msgInvalidFeed,
			Value:   url.String(),
			Cause:   domain.ErrInvalidFeed,
		}
	}

	saved, err := u.feedRepo.SaveFeed(ctx, domain.NewFeed(ownerID, name, url))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateFeedURL) {
			return nil, duplicateURLError(url)
		}
		logger.Logger.ErrorContext(ctx, "Failed to save feed", "url", url.String(), "error", err)
		return nil, fmt.Errorf("save feed: %w", err)
	}

	logger.Logger.InfoContext(ctx, "Feed registered",
		"feed_id", saved.ID().String(),
		"owner_id", ownerID.String(),
		"url", url.String())

	u.publishRegistered(ctx, saved)
	return saved, nil
}

// publishRegistered is fire-and-forget; registration already succeeded.
func (u *RegisterFeedUsecase) publishRegistered(ctx context.Context, feed *domain.Feed) {
	if u.eventPublisher == nil {
		return
	}
	event := domain.NewFeedRegistered(feed, u.now())
	if err := u.eventPublisher.Publish(ctx, event); err != nil {
		logger.Logger.WarnContext(ctx, "failed to publish FeedRegistered event (non-fatal)",
			"feed_id", feed.ID().String(),
			"error", err)
	}
}

func duplicateURLError(url domain.FeedURL) error {
	return &domain.ValidationError{
		Field:   "url",
		Rule:    "unique",
		Message: msgDuplicateURL,
		Value:   url.String(),
		Cause:   domain.ErrDuplicateFeedURL,
	}
}
