package upload

import (
	"context"
	"io"
)

/* Store abstracts where uploaded cover images end up.
 * The catalog only ever sees the public path returned by Save; the row that
 * references it is written separately, with no transactional link.
 */

// Store persists uploaded files and returns their public path
type Store interface {
	/* Save writes the file content under a generated unique name derived from
	 * the form field name and the original filename's extension.
	 * Returns the public relative path (e.g. /uploads/file-<uuid>.jpg).
	 */
	Save(ctx context.Context, fieldName, originalFilename string, content io.Reader) (string, error)
}

// Stats describes the stored files, used by the metrics collector
type Stats struct {
	Files int64
	Bytes int64
}

// StatReader reports aggregate information about stored files
type StatReader interface {
	Stats(ctx context.Context) (Stats, error)
}
