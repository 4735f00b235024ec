package feed_store_gateway

import (
	"fmt"

	"feedhub/domain"
	"feedhub/driver/feed_db"
)

func fromDomainFeed(feed *domain.Feed) *feed_db.FeedRow {
	return &feed_db.FeedRow{
		ID:              feed.ID(),
		OwnerID:         feed.OwnerID,
		Name:            feed.Name.String(),
		URL:             feed.URL.String(),
		LastProcessedAt: feed.LastProcessedAt,
		CreatedAt:       feed.CreatedAt,
		UpdatedAt:       feed.UpdatedAt,
	}
}

func toDomainFeed(row *feed_db.FeedRow) (*domain.Feed, error) {
	name, err := domain.NewFeedName(row.Name)
	if err != nil {
		return nil, fmt.Errorf("stored feed %s has invalid name: %w", row.ID, err)
	}
	url, err := domain.NewFeedURL(row.URL)
	if err != nil {
		return nil, fmt.Errorf("stored feed %s has invalid url: %w", row.ID, err)
	}

	feed := domain.NewFeed(row.OwnerID, name, url)
	if err := feed.AssignID(row.ID); err != nil {
		return nil, err
	}
	feed.LastProcessedAt = row.LastProcessedAt
	feed.CreatedAt = row.CreatedAt
	feed.UpdatedAt = row.UpdatedAt
	return feed, nil
}

func toDomainFeeds(rows []*feed_db.FeedRow) ([]*domain.Feed, error) {
	feeds := make([]*domain.Feed, 0, len(rows))
	for _, row := range rows {
		feed, err := toDomainFeed(row)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	return feeds, nil
}

func fromDomainFeedItem(item *domain.FeedItem) *feed_db.FeedItemRow {
	return &feed_db.FeedItemRow{
		ID:          item.ID(),
		FeedID:      item.FeedID,
		Title:       item.Title,
		Link:        item.Link,
		EntryID:     item.EntryID.String(),
		PublishedAt: item.PublishedAt,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toDomainFeedItem(row *feed_db.FeedItemRow) (*domain.FeedItem, error) {
	entryID, err := domain.NewEntryID(row.EntryID)
	if err != nil {
		return nil, fmt.Errorf("stored feed item %s has invalid entry id: %w", row.ID, err)
	}

	item, err := domain.NewFeedItem(row.FeedID, row.Title, row.Link, entryID, row.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("stored feed item %s is invalid: %w", row.ID, err)
	}
	if err := item.AssignID(row.ID); err != nil {
		return nil, err
	}
	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return item, nil
}

func toDomainFeedItems(rows []*feed_db.FeedItemRow) ([]*domain.FeedItem, error) {
	items := make([]*domain.FeedItem, 0, len(rows))
	for _, row := range rows {
		item, err := toDomainFeedItem(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
