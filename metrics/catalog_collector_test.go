package metrics

import (
	"context"
	"fmt"
	"testing"

	"github.com/marcelsud/bookstore-catalog/catalog/mocks"
	"github.com/marcelsud/bookstore-catalog/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatReader struct {
	stats upload.Stats
	err   error
}

func (s stubStatReader) Stats(ctx context.Context) (upload.Stats, error) {
	return s.stats, s.err
}

func TestCatalogCollector_Collect(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Count", ctx).Return(int64(3), nil)

		collector := NewCatalogCollector(repo, stubStatReader{
			stats: upload.Stats{Files: 2, Bytes: 2048},
		})

		m, err := collector.Collect(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), m.BookCount)
		assert.Equal(t, int64(2), m.UploadCount)
		assert.Equal(t, int64(2048), m.UploadBytes)
		assert.False(t, m.Timestamp.IsZero())
	})

	t.Run("count failure propagates", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Count", ctx).Return(int64(0), fmt.Errorf("db down"))

		collector := NewCatalogCollector(repo, stubStatReader{})

		_, err := collector.Collect(ctx)
		require.Error(t, err)
	})

	t.Run("stats failure propagates", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Count", ctx).Return(int64(3), nil)

		collector := NewCatalogCollector(repo, stubStatReader{
			err: fmt.Errorf("unreadable dir"),
		})

		_, err := collector.Collect(ctx)
		require.Error(t, err)
	})
}
