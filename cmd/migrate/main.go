package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/marcelsud/bookstore-catalog/catalog/postgres/migrations"
	"github.com/marcelsud/bookstore-catalog/config"
)

/* migrate - applies the embedded schema migrations
 * Usage: go run cmd/migrate/main.go [up|down]
 * Exit codes: 0 = applied, 1 = failed
 */

func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}
	if direction != "up" && direction != "down" {
		fmt.Fprintf(os.Stderr, "usage: migrate [up|down]\n")
		os.Exit(1)
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

	db, err := sql.Open("pgx", cfg.PostgresConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening postgres connection: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	switch direction {
	case "up":
		err = migrations.Up(db)
	case "down":
		err = migrations.Down(db)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrating %s: %v\n", direction, err)
		os.Exit(1)
	}

	fmt.Printf("Migrations %s applied\n", direction)
}
