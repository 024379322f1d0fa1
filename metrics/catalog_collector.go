package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelsud/bookstore-catalog/catalog"
	"github.com/marcelsud/bookstore-catalog/upload"
)

// CatalogCollector implements the Collector interface over the book
// repository and the upload store.
type CatalogCollector struct {
	books   catalog.Reader
	uploads upload.StatReader
}

// NewCatalogCollector creates a new catalog metrics collector
func NewCatalogCollector(books catalog.Reader, uploads upload.StatReader) *CatalogCollector {
	return &CatalogCollector{
		books:   books,
		uploads: uploads,
	}
}

// Collect gathers all metrics
func (c *CatalogCollector) Collect(ctx context.Context) (Metrics, error) {
	bookCount, err := c.GetBookCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting book count: %w", err)
	}

	uploadCount, uploadBytes, err := c.GetUploadStats(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting upload stats: %w", err)
	}

	return Metrics{
		BookCount:   bookCount,
		UploadCount: uploadCount,
		UploadBytes: uploadBytes,
		Timestamp:   time.Now(),
	}, nil
}

// GetBookCount returns the number of books in the catalog
func (c *CatalogCollector) GetBookCount(ctx context.Context) (int64, error) {
	return c.books.Count(ctx)
}

// GetUploadStats returns the count and total size of stored uploads
func (c *CatalogCollector) GetUploadStats(ctx context.Context) (int64, int64, error) {
	stats, err := c.uploads.Stats(ctx)
	if err != nil {
		return 0, 0, err
	}
	return stats.Files, stats.Bytes, nil
}
