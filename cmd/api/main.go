package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/bookstore-catalog/catalog"
	"github.com/marcelsud/bookstore-catalog/catalog/postgres"
	"github.com/marcelsud/bookstore-catalog/config"
	"github.com/marcelsud/bookstore-catalog/internal/http/chi"
	"github.com/marcelsud/bookstore-catalog/metrics"
	"github.com/marcelsud/bookstore-catalog/upload/filesystem"
)

const TIMEOUT = 30 * time.Second

/* main wires the application together: configuration, the connection pool,
 * the upload store, the metrics exporter and the HTTP handlers. Imports only
 * point downwards: the entrypoint imports the business layer, which imports
 * the storage layer.
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := cfg.ValidatePostgres(); err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	// Pool is owned here and injected; handlers never touch a global handle
	repo, err := postgres.NewRepositoryWithPoolConfig(
		cfg.PostgresConnectionString(),
		cfg.GetPostgresMaxOpenConns(),
		cfg.GetPostgresMaxIdleConns(),
		cfg.GetPostgresConnMaxLifeMinutes(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer repo.Close(ctx)

	store, err := filesystem.NewStore(cfg.UploadDir, "/uploads")
	if err != nil {
		fmt.Println(err)
		return
	}

	collector := metrics.NewCatalogCollector(repo, store)
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(ctx)

	s := catalog.NewService(repo)
	r := chi.Handlers(ctx, s, store, chi.Options{
		UploadsDir:     store.Dir(),
		MetricsHandler: exporter.ServeHTTP(),
	})
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("forcing closing the server")
	}
}
