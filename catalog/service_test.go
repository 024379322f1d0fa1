package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/marcelsud/bookstore-catalog/catalog"
	"github.com/marcelsud/bookstore-catalog/catalog/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		b := catalog.Book{
			Title: "Dune",
			Desc:  "Sci-fi classic",
			Price: 12.5,
			Cover: "/uploads/file-abc.jpg",
		}
		repo := mocks.NewRepository(t)
		repo.On("Insert", ctx, b).Return(int64(1), nil)
		s := catalog.NewService(repo)
		saved, err := s.Create(ctx, "Dune", "Sci-fi classic", 12.5, "/uploads/file-abc.jpg")
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID)
		assert.Equal(t, "Dune", saved.Title)
		assert.Equal(t, "Sci-fi classic", saved.Desc)
		assert.Equal(t, 12.5, saved.Price)
		assert.Equal(t, "/uploads/file-abc.jpg", saved.Cover)
	})

	t.Run("empty cover gets the default placeholder", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Insert", ctx, catalog.MatchBook(func(b catalog.Book) bool {
			return b.Cover == catalog.DefaultCover
		})).Return(int64(2), nil)
		s := catalog.NewService(repo)
		saved, err := s.Create(ctx, "Dune", "Sci-fi classic", 12.5, "")
		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultCover, saved.Cover)
	})

	t.Run("empty title rejected before any insert", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := catalog.NewService(repo)
		_, err := s.Create(ctx, "  ", "Sci-fi classic", 12.5, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidBook)
		repo.AssertNotCalled(t, "Insert")
	})

	t.Run("empty description rejected before any insert", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := catalog.NewService(repo)
		_, err := s.Create(ctx, "Dune", "", 12.5, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidBook)
		repo.AssertNotCalled(t, "Insert")
	})

	t.Run("non-positive price rejected before any insert", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := catalog.NewService(repo)
		_, err := s.Create(ctx, "Dune", "Sci-fi classic", 0, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidBook)
		repo.AssertNotCalled(t, "Insert")
	})

	t.Run("fail", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Insert", ctx, catalog.MatchBook(func(b catalog.Book) bool {
			return b.Title == "Dune"
		})).Return(int64(0), fmt.Errorf("some error"))
		s := catalog.NewService(repo)
		saved, err := s.Create(ctx, "Dune", "Sci-fi classic", 12.5, "")
		require.Error(t, err)
		assert.Empty(t, saved)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		books := []catalog.Book{
			{ID: 1, Title: "Dune", Desc: "Sci-fi classic", Price: 12.5, Cover: catalog.DefaultCover},
			{ID: 2, Title: "Neuromancer", Desc: "Cyberpunk", Price: 10.99, Cover: catalog.DefaultCover},
		}
		repo := mocks.NewRepository(t)
		repo.On("SelectAll", ctx).Return(books, nil)
		s := catalog.NewService(repo)
		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, books, all)
	})

	t.Run("empty catalog is not an error", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("SelectAll", ctx).Return([]catalog.Book{}, nil)
		s := catalog.NewService(repo)
		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("fail", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("SelectAll", ctx).Return(nil, fmt.Errorf("some error"))
		s := catalog.NewService(repo)
		_, err := s.List(ctx)
		require.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		b := catalog.Book{ID: 1, Title: "Dune", Desc: "Sci-fi classic", Price: 12.5, Cover: catalog.DefaultCover}
		repo := mocks.NewRepository(t)
		repo.On("Select", ctx, int64(1)).Return(b, nil)
		s := catalog.NewService(repo)
		got, err := s.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, b, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Select", ctx, int64(99)).Return(catalog.Book{}, catalog.ErrNotFound)
		s := catalog.NewService(repo)
		_, err := s.Get(ctx, 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		b := catalog.Book{
			ID:    1,
			Title: "Dune",
			Desc:  "Sci-fi classic",
			Price: 15.0,
			Cover: "/uploads/file-abc.jpg",
		}
		repo := mocks.NewRepository(t)
		repo.On("Update", ctx, b).Return(nil)
		s := catalog.NewService(repo)
		err := s.Update(ctx, 1, "Dune", "Sci-fi classic", 15.0, "/uploads/file-abc.jpg")
		require.NoError(t, err)
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Update", ctx, catalog.MatchBook(func(b catalog.Book) bool {
			return b.ID == 99
		})).Return(catalog.ErrNotFound)
		s := catalog.NewService(repo)
		err := s.Update(ctx, 99, "Dune", "Sci-fi classic", 15.0, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("invalid book rejected before any update", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := catalog.NewService(repo)
		err := s.Update(ctx, 1, "Dune", "Sci-fi classic", -3, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidBook)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Delete", ctx, int64(1)).Return(nil)
		s := catalog.NewService(repo)
		err := s.Delete(ctx, 1)
		require.NoError(t, err)
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Delete", ctx, int64(99)).Return(catalog.ErrNotFound)
		s := catalog.NewService(repo)
		err := s.Delete(ctx, 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}
