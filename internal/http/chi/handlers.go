package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/bookstore-catalog/catalog"
	"github.com/marcelsud/bookstore-catalog/upload"
	"github.com/marcelsud/bookstore-catalog/web"
)

// Options carries the optional pieces of the HTTP surface
type Options struct {
	// UploadsDir is the directory served under /uploads
	UploadsDir string

	// MetricsHandler, when set, is mounted at /metrics
	MetricsHandler http.Handler
}

// Handlers sets up the catalog API routes
func Handlers(ctx context.Context, bookService catalog.UseCase, store upload.Store, opts Options) *chi.Mux {
	logger := httplog.NewLogger("bookstore-catalog", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Greeting, kept for clients probing the API root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode("Hello, this is the backend")
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Method(http.MethodGet, "/books", getBooks(bookService))
	r.Method(http.MethodGet, "/books/{id}", getBook(bookService))
	r.Method(http.MethodPost, "/books", postBooks(bookService))
	r.Method(http.MethodPut, "/books/{id}", putBook(bookService))
	r.Method(http.MethodDelete, "/books/{id}", deleteBook(bookService))

	r.Method(http.MethodPost, "/upload", postUpload(store))

	// Stored cover images are retrievable under the same path the upload
	// endpoint hands back
	if opts.UploadsDir != "" {
		fileServer := http.FileServer(http.Dir(opts.UploadsDir))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))
	}

	if opts.MetricsHandler != nil {
		r.Handle("/metrics", opts.MetricsHandler)
	}

	// Browser client
	r.Handle("/app/*", http.StripPrefix("/app/", web.Handler()))

	return r
}
