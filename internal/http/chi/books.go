package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/bookstore-catalog/catalog"
)

/* HTTP layer DTOs for the catalog API
 * Separate from domain entities to avoid leaking internal structure
 */

// bookRequest represents an incoming book in the web layer
type bookRequest struct {
	Title string  `json:"title"`
	Desc  string  `json:"desc"`
	Price float64 `json:"price"`
	Cover string  `json:"cover"`
}

// bookResponse represents a book in the web layer
type bookResponse struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Desc  string  `json:"desc"`
	Price float64 `json:"price"`
	Cover string  `json:"cover"`
}

// createResponse confirms a creation and carries the generated id
type createResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// messageResponse is a plain confirmation
type messageResponse struct {
	Message string `json:"message"`
}

// writeServiceError maps domain errors to HTTP status codes.
// Validation failures are client errors and not-found comes from a zero
// affected-row count; everything else is a storage failure.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidBook):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, catalog.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func getBooks(bookService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := bookService.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		// Always an array, even for an empty catalog
		result := make([]bookResponse, 0, len(all))
		for _, b := range all {
			result = append(result, bookResponse{
				ID:    b.ID,
				Title: b.Title,
				Desc:  b.Desc,
				Price: b.Price,
				Cover: b.Cover,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func getBook(bookService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid book id", http.StatusBadRequest)
			return
		}
		b, err := bookService.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		result := bookResponse{
			ID:    b.ID,
			Title: b.Title,
			Desc:  b.Desc,
			Price: b.Price,
			Cover: b.Cover,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func postBooks(bookService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var br bookRequest
		err := json.NewDecoder(r.Body).Decode(&br)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b, err := bookService.Create(r.Context(), br.Title, br.Desc, br.Price, br.Cover)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		response := createResponse{
			ID:      b.ID,
			Message: "Book has been added to the library!",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func putBook(bookService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var br bookRequest
		err := json.NewDecoder(r.Body).Decode(&br)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid book id", http.StatusBadRequest)
			return
		}
		err = bookService.Update(r.Context(), id, br.Title, br.Desc, br.Price, br.Cover)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(messageResponse{Message: "Book has been updated successfully"}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func deleteBook(bookService catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid book id", http.StatusBadRequest)
			return
		}
		err = bookService.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(messageResponse{Message: "Book has been deleted successfully"}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
