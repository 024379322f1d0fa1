package catalog

import (
	"context"
	"fmt"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// UseCase defines the business operations for catalog management
type UseCase interface {
	Create(ctx context.Context, title, desc string, price float64, cover string) (Book, error)
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int64) (Book, error)
	Update(ctx context.Context, id int64, title, desc string, price float64, cover string) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	Repo Repository
}

// NewService creates a new catalog service with dependency injection
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

// Create validates and persists a new book, returning it with the generated id.
// An empty cover is replaced by the default placeholder path, so every
// persisted row carries a non-empty cover reference.
func (s *Service) Create(ctx context.Context, title, desc string, price float64, cover string) (Book, error) {
	if cover == "" {
		cover = DefaultCover
	}
	b := Book{
		Title: title,
		Desc:  desc,
		Price: price,
		Cover: cover,
	}
	if err := b.Validate(); err != nil {
		return Book{}, fmt.Errorf("validating book: %w", err)
	}
	id, err := s.Repo.Insert(ctx, b)
	if err != nil {
		return Book{}, fmt.Errorf("inserting book: %w", err)
	}
	b.ID = id
	return b, nil
}

// List returns all books ordered by id
func (s *Service) List(ctx context.Context) ([]Book, error) {
	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	return all, nil
}

// Get returns a single book by id
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	b, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

// Update validates and overwrites all mutable fields of an existing book
func (s *Service) Update(ctx context.Context, id int64, title, desc string, price float64, cover string) error {
	if cover == "" {
		cover = DefaultCover
	}
	b := Book{
		ID:    id,
		Title: title,
		Desc:  desc,
		Price: price,
		Cover: cover,
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("validating book: %w", err)
	}
	err := s.Repo.Update(ctx, b)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}
	return nil
}

// Delete removes a book by id
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}
