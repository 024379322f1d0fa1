package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marcelsud/bookstore-catalog/catalog"
	"github.com/marcelsud/bookstore-catalog/catalog/postgres"
	"github.com/marcelsud/bookstore-catalog/catalog/seed"
	"github.com/marcelsud/bookstore-catalog/config"
)

/* seed - populates the catalog from a YAML file
 * Usage: go run cmd/seed/main.go [seed.yaml]
 */

func main() {
	seedFile := "seed.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidatePostgres(); err != nil {
		fmt.Fprintf(os.Stderr, "validating config: %v\n", err)
		os.Exit(1)
	}

	loader := seed.NewLoader()
	if err := loader.Load(seedFile); err != nil {
		fmt.Fprintf(os.Stderr, "loading seed file: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	repo, err := postgres.NewRepositoryWithPoolConfig(
		cfg.PostgresConnectionString(),
		cfg.GetPostgresMaxOpenConns(),
		cfg.GetPostgresMaxIdleConns(),
		cfg.GetPostgresConnMaxLifeMinutes(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connecting to postgres: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(ctx)

	service := catalog.NewService(repo)

	for _, b := range loader.List() {
		created, err := service.Create(ctx, b.Title, b.Desc, b.Price, b.Cover)
		if err != nil {
			fmt.Fprintf(os.Stderr, "inserting %q: %v\n", b.Title, err)
			os.Exit(1)
		}
		fmt.Printf("Added %q with id %d\n", created.Title, created.ID)
	}

	fmt.Printf("Seeded %d book(s)\n", len(loader.List()))
}
