package catalog

import "context"

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 * Written for users of the API, not just for testing
 */

// Reader provides read operations for books
type Reader interface {
	/* Context is always the first parameter in functions that do I/O
	 * This allows for cancellation, timeouts, and shared values
	 */
	Select(ctx context.Context, id int64) (Book, error)
	SelectAll(ctx context.Context) ([]Book, error)
	Count(ctx context.Context) (int64, error)
}

// Writer provides write operations for books
type Writer interface {
	/* Insert persists a new book and returns the generated id */
	Insert(ctx context.Context, book Book) (int64, error)
	/* Update overwrites all mutable columns of the row with the book's id.
	 * A non-existent id is reported as ErrNotFound, never as silent success.
	 */
	Update(ctx context.Context, book Book) error
	Delete(ctx context.Context, id int64) error
}

/* Interface composition - combining small interfaces into larger ones
 * This is preferred over large monolithic interfaces
 */
type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
