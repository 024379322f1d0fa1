package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the catalog system.
type Metrics struct {
	// BookCount is the number of books in the catalog
	BookCount int64 `json:"book_count"`

	// UploadCount is the number of stored cover image files
	UploadCount int64 `json:"upload_count"`

	// UploadBytes is the total size of stored cover image files
	UploadBytes int64 `json:"upload_bytes"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the catalog system.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetBookCount returns the number of books in the catalog
	GetBookCount(ctx context.Context) (int64, error)

	// GetUploadStats returns the count and total size of stored uploads
	GetUploadStats(ctx context.Context) (int64, int64, error)
}
