package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FeedItem is one ingested entry of a Feed, identified naturally by (FeedID, EntryID).
type FeedItem struct {
	id          uuid.UUID
	FeedID      uuid.UUID
	Title       string
	Link        string
	EntryID     EntryID
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewFeedItem(feedID uuid.UUID, title, link string, entryID EntryID, publishedAt time.Time) (*FeedItem, error) {
	if feedID == uuid.Nil {
		return nil, &ValidationError{Field: "feed_id", Rule: "required", Message: "Feed item must belong to a feed."}
	}
	if err := validateItemFields(title, link); err != nil {
		return nil, err
	}
	return &FeedItem{
		FeedID:      feedID,
		Title:       title,
		Link:        link,
		EntryID:     entryID,
		PublishedAt: publishedAt,
	}, nil
}

func (i *FeedItem) ID() uuid.UUID { return i.id }

func (i *FeedItem) HasID() bool { return i.id != uuid.Nil }

func (i *FeedItem) AssignID(id uuid.UUID) error {
	if i.HasID() && i.id != id {
		return ErrIDAlreadyAssigned
	}
	i.id = id
	return nil
}

// Update applies upstream edits in place; the stored identifier is preserved.
func (i *FeedItem) Update(title, link string, publishedAt time.Time) error {
	if err := validateItemFields(title, link); err != nil {
		return err
	}
	i.Title = title
	i.Link = link
	i.PublishedAt = publishedAt
	return nil
}

func validateItemFields(title, link string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Rule: "required", Message: "Feed item title cannot be empty."}
	}
	if strings.TrimSpace(link) == "" {
		return &ValidationError{Field: "link", Rule: "required", Message: "Feed item link cannot be empty."}
	}
	return nil
}

// FeedItemWithFeed annotates an item with the display name of its feed.
type FeedItemWithFeed struct {
	Item     *FeedItem
	FeedName string
}
