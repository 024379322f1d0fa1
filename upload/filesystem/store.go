package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/marcelsud/bookstore-catalog/upload"
)

/* Filesystem implementation of upload.Store
 * Files land in a flat directory that is also served statically, so the
 * returned path doubles as the retrieval URL. Names embed a random UUID
 * instead of a timestamp: two concurrent uploads can never collide.
 */

type Store struct {
	dir       string
	urlPrefix string
}

// NewStore creates a store rooted at dir, serving files under urlPrefix.
// The directory is created if absent.
func NewStore(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Store{
		dir:       dir,
		urlPrefix: urlPrefix,
	}, nil
}

// Dir returns the directory files are written to
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the content to a new file named {field}-{uuid}{ext} and
// returns its public path. The write completes before Save returns, so a
// client holding the path can fetch the bytes immediately.
func (s *Store) Save(ctx context.Context, fieldName, originalFilename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fieldName + "-" + uuid.New().String() + filepath.Ext(originalFilename)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing upload file: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}

// Stats walks the upload directory and reports file count and total size
func (s *Store) Stats(ctx context.Context) (upload.Stats, error) {
	if err := ctx.Err(); err != nil {
		return upload.Stats{}, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return upload.Stats{}, fmt.Errorf("reading upload directory: %w", err)
	}

	var stats upload.Stats
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return upload.Stats{}, fmt.Errorf("reading upload file info: %w", err)
		}
		stats.Files++
		stats.Bytes += info.Size()
	}

	return stats, nil
}
