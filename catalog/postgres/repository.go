package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/marcelsud/bookstore-catalog/catalog"
)

/* PostgreSQL implementation of catalog.Repository
 * All statements are parameterized ($1, $2, ...) - user input never reaches
 * the SQL text itself. "desc" is a reserved word, so the column is quoted.
 */

type Repository struct {
	DB *sql.DB
}

// NewRepository creates a PostgreSQL repository with the default pool (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	return NewRepositoryWithPoolConfig(connectionString, 25, 5, 5)
}

// NewRepositoryWithPoolConfig creates a PostgreSQL repository with a custom pool.
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: maximum idle connections kept in the pool
// maxLifeMinutes: maximum lifetime in minutes of a reused connection
func NewRepositoryWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Repository, error) {
	db, err := sql.Open("pgx", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Repository{
		DB: db,
	}, nil
}

// Select fetches a book by id
func (r *Repository) Select(ctx context.Context, id int64) (catalog.Book, error) {
	query := `SELECT id, title, "desc", price, cover FROM books WHERE id = $1`

	var b catalog.Book
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Desc,
		&b.Price,
		&b.Cover,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Book{}, catalog.ErrNotFound
	}

	if err != nil {
		return catalog.Book{}, fmt.Errorf("selecting book: %w", err)
	}

	return b, nil
}

// SelectAll returns every book, ordered by id so clients see a stable listing.
// An empty table yields an empty slice, not an error.
func (r *Repository) SelectAll(ctx context.Context) ([]catalog.Book, error) {
	query := `SELECT id, title, "desc", price, cover FROM books ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	defer rows.Close()

	books := []catalog.Book{}

	for rows.Next() {
		var b catalog.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Desc, &b.Price, &b.Cover); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}

	return books, nil
}

// Count returns the number of books in the catalog
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return count, nil
}

// Insert persists a new book and returns the generated id
func (r *Repository) Insert(ctx context.Context, b catalog.Book) (int64, error) {
	query := `
		INSERT INTO books (title, "desc", price, cover)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, b.Title, b.Desc, b.Price, b.Cover).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting book: %w", err)
	}

	return id, nil
}

// Update overwrites all mutable columns of an existing book.
// Zero affected rows means the id does not exist and is reported as ErrNotFound.
func (r *Repository) Update(ctx context.Context, b catalog.Book) error {
	query := `
		UPDATE books
		SET title = $1, "desc" = $2, price = $3, cover = $4
		WHERE id = $5
	`

	result, err := r.DB.ExecContext(ctx, query, b.Title, b.Desc, b.Price, b.Cover, b.ID)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return catalog.ErrNotFound
	}

	return nil
}

// Delete removes a book by id
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM books WHERE id = $1"

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return catalog.ErrNotFound
	}

	return nil
}

// Close closes the underlying connection pool
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}
