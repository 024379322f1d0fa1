package catalog

import (
	"errors"
	"fmt"
	"strings"
)

/* Book represents a catalog record in the system
 * Uses value semantics as it represents data, not behavior
 */
type Book struct {
	ID    int64
	Title string
	Desc  string
	Price float64
	Cover string
}

// DefaultCover is the placeholder path persisted when no cover image was uploaded.
const DefaultCover = "/uploads/default-cover.jpg"

// ErrNotFound is returned when a book id matches no row.
var ErrNotFound = errors.New("book not found")

// ErrInvalidBook is returned when a book fails validation before any mutation.
var ErrInvalidBook = errors.New("invalid book")

// Validate checks the required fields of a book.
// Title and description must be non-empty and the price strictly positive.
func (b Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidBook)
	}
	if strings.TrimSpace(b.Desc) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidBook)
	}
	if b.Price <= 0 {
		return fmt.Errorf("%w: price must be a positive number", ErrInvalidBook)
	}
	return nil
}
