package domain

import "time"

// RSSFeedEntry is the normalized parser output for one item. It is never persisted directly.
type RSSFeedEntry struct {
	Title       string
	Link        string
	EntryID     EntryID
	PublishedAt time.Time
}
