package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feed is a user-owned subscription to a remote RSS/Atom source.
// The identifier is assigned once by the store and never changes afterwards.
type Feed struct {
	id              uuid.UUID
	OwnerID         uuid.UUID
	Name            FeedName
	URL             FeedURL
	LastProcessedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewFeed(ownerID uuid.UUID, name FeedName, url FeedURL) *Feed {
	return &Feed{
		OwnerID: ownerID,
		Name:    name,
		URL:     url,
	}
}

func (f *Feed) ID() uuid.UUID { return f.id }

func (f *Feed) HasID() bool { return f.id != uuid.Nil }

// AssignID sets the store identifier. Calling it on a feed that already has one is a programming error.
func (f *Feed) AssignID(id uuid.UUID) error {
	if f.HasID() && f.id != id {
		return ErrIDAlreadyAssigned
	}
	f.id = id
	return nil
}

func (f *Feed) BelongsTo(ownerID uuid.UUID) bool {
	return f.OwnerID == ownerID
}

// MarkProcessed records the completion time of a successful ingestion run.
func (f *Feed) MarkProcessed(at time.Time) {
	processedAt := at
	f.LastProcessedAt = &processedAt
}

func (f *Feed) IsProcessed() bool {
	return f.LastProcessedAt != nil
}

// Snapshot returns a copy that shares no mutable state with f.
func (f *Feed) Snapshot() Feed {
	snapshot := *f
	if f.LastProcessedAt != nil {
		processedAt := *f.LastProcessedAt
		snapshot.LastProcessedAt = &processedAt
	}
	return snapshot
}
