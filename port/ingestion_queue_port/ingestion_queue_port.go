package ingestion_queue_port

import (
	"context"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=ingestion_queue_port.go -destination=../../mocks/mock_ingestion_queue_port.go -package=mocks

// IngestionQueuePort schedules asynchronous ingestion with retry.
type IngestionQueuePort interface {
	// Enqueue reports false when the feed is already queued, running or waiting for a retry.
	Enqueue(ctx context.Context, feedID uuid.UUID) (bool, error)
}
