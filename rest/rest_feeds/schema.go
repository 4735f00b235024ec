package rest_feeds

import (
	"time"

	"feedhub/domain"
	"feedhub/usecase/process_feeds_usecase"
	"feedhub/utils/errors"
)

type RegisterFeedRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type FeedResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	URL             string     `json:"url"`
	LastProcessedAt *time.Time `json:"last_processed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type FeedItemResponse struct {
	ID          string    `json:"id"`
	FeedID      string    `json:"feed_id"`
	FeedName    string    `json:"feed_name"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	EntryID     string    `json:"entry_id"`
	PublishedAt time.Time `json:"published_at"`
}

type FeedProcessResult struct {
	FeedID         string `json:"feed_id"`
	FeedName       string `json:"feed_name"`
	Status         string `json:"status"`
	ItemsProcessed int    `json:"items_processed"`
	Error          string `json:"error,omitempty"`
}

type ProcessReportResponse struct {
	Sync       bool                `json:"sync"`
	Message    string              `json:"message,omitempty"`
	FeedsTotal int                 `json:"feeds_total"`
	Succeeded  int                 `json:"succeeded"`
	Failed     int                 `json:"failed"`
	Queued     int                 `json:"queued"`
	DurationMS int64               `json:"duration_ms"`
	Results    []FeedProcessResult `json:"results"`
}

func toFeedResponse(feed *domain.Feed) FeedResponse {
	return FeedResponse{
		ID:              feed.ID().String(),
		Name:            feed.Name.String(),
		URL:             feed.URL.String(),
		LastProcessedAt: feed.LastProcessedAt,
		CreatedAt:       feed.CreatedAt,
		UpdatedAt:       feed.UpdatedAt,
	}
}

func toFeedResponses(feeds []*domain.Feed) []FeedResponse {
	out := make([]FeedResponse, 0, len(feeds))
	for _, feed := range feeds {
		out = append(out, toFeedResponse(feed))
	}
	return out
}

func toFeedItemResponses(items []domain.FeedItemWithFeed) []FeedItemResponse {
	out := make([]FeedItemResponse, 0, len(items))
	for _, entry := range items {
		out = append(out, FeedItemResponse{
			ID:          entry.Item.ID().String(),
			FeedID:      entry.Item.FeedID.String(),
			FeedName:    entry.FeedName,
			Title:       entry.Item.Title,
			Link:        entry.Item.Link,
			EntryID:     entry.Item.EntryID.String(),
			PublishedAt: entry.Item.PublishedAt,
		})
	}
	return out
}

func toProcessReportResponse(report domain.ProcessReport, operation string) ProcessReportResponse {
	resp := ProcessReportResponse{
		Sync:       report.Sync,
		FeedsTotal: len(report.Outcomes),
		Succeeded:  report.Count(domain.ProcessStatusSucceeded),
		Failed:     report.Count(domain.ProcessStatusFailed),
		Queued:     report.Count(domain.ProcessStatusQueued),
		DurationMS: report.Duration.Milliseconds(),
		Results:    make([]FeedProcessResult, 0, len(report.Outcomes)),
	}
	if len(report.Outcomes) == 0 {
		resp.Message = process_feeds_usecase.NoFeedsMessage
	}

	for _, o := range report.Outcomes {
		result := FeedProcessResult{
			FeedID:         o.FeedID.String(),
			FeedName:       o.FeedName,
			Status:         string(o.Status),
			ItemsProcessed: o.ItemsProcessed,
		}
		if o.Err != nil {
			result.Error = errors.FromDomainError(o.Err, "rest", "FeedHandler", operation).Message
		}
		resp.Results = append(resp.Results, result)
	}
	return resp
}
