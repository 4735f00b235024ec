package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Input shape
	ErrValidation       = errors.New("validation failed")
	ErrDuplicateFeedURL = errors.New("feed url already registered")
	ErrInvalidFeed      = errors.New("url does not point to a valid feed")

	// Lookup
	ErrFeedNotFound     = errors.New("feed not found")
	ErrFeedItemNotFound = errors.New("feed item not found")
	ErrFeedAccessDenied = errors.New("feed access denied")

	// Fetch / parse
	ErrUnableToFetch = errors.New("unable to fetch feed")
	ErrInvalidFormat = errors.New("invalid feed format")
	ErrEntrySkipped  = errors.New("feed entry skipped")

	// Store
	ErrFeedItemConflict  = errors.New("feed item already exists for entry id")
	ErrIDAlreadyAssigned = errors.New("identifier already assigned")

	// Queue
	ErrQueueFull    = errors.New("ingestion queue is full")
	ErrQueueStopped = errors.New("ingestion queue is stopped")
)

// ValidationError names the rule a raw value violated.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
	Value   string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: violates rule %q", e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValidation, e.Cause}
	}
	return []error{ErrValidation}
}

// FetchError reports a transport failure or a non-success HTTP status.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unable to fetch feed from %q", e.URL)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": unexpected status code %d", e.StatusCode)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *FetchError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrUnableToFetch, e.Cause}
	}
	return []error{ErrUnableToFetch}
}

// FormatError reports a response body that could not be read as a feed.
type FormatError struct {
	URL   string
	Cause error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid feed format for %q: %v", e.URL, e.Cause)
}

func (e *FormatError) Unwrap() []error {
	return []error{ErrInvalidFormat, e.Cause}
}

// IsRetryable reports whether an ingestion failure may succeed on a later attempt.
// Lookups and input validation are final.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrFeedNotFound) && !errors.Is(err, ErrValidation)
}
