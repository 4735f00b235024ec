package domain

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const MaxFeedNameLength = 255

// FeedURL is an absolute http(s) URL. The zero value is not valid; build one with NewFeedURL.
type FeedURL struct {
	value string
}

func NewFeedURL(raw string) (FeedURL, error) {
	if raw == "" {
		return FeedURL{}, &ValidationError{Field: "url", Rule: "required", Message: "Feed URL cannot be empty."}
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return FeedURL{}, &ValidationError{Field: "url", Rule: "absolute_url", Message: "Feed URL must be a valid URL.", Value: raw}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return FeedURL{}, &ValidationError{Field: "url", Rule: "scheme", Message: "Feed URL must use HTTP or HTTPS protocol.", Value: raw}
	}

	return FeedURL{value: raw}, nil
}

func (u FeedURL) String() string { return u.value }

func (u FeedURL) Equal(other FeedURL) bool { return u.value == other.value }

func (u FeedURL) IsZero() bool { return u.value == "" }

// FeedName is a display name of at most MaxFeedNameLength characters.
type FeedName struct {
	value string
}

func NewFeedName(raw string) (FeedName, error) {
	if strings.TrimSpace(raw) == "" {
		return FeedName{}, &ValidationError{Field: "name", Rule: "required", Message: "Feed name cannot be empty."}
	}
	if utf8.RuneCountInString(raw) > MaxFeedNameLength {
		return FeedName{}, &ValidationError{Field: "name", Rule: "max_length", Message: "Feed name cannot exceed 255 characters."}
	}
	return FeedName{value: raw}, nil
}

func (n FeedName) String() string { return n.value }

func (n FeedName) Equal(other FeedName) bool { return n.value == other.value }

// EntryID is the identifier a feed publishes for one of its entries.
type EntryID struct {
	value string
}

func NewEntryID(raw string) (EntryID, error) {
	if strings.TrimSpace(raw) == "" {
		return EntryID{}, &ValidationError{Field: "entry_id", Rule: "required", Message: "Entry ID cannot be empty."}
	}
	return EntryID{value: raw}, nil
}

func (id EntryID) String() string { return id.value }

func (id EntryID) Equal(other EntryID) bool { return id.value == other.value }
