package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"ev-trip-service/internal/adapters/repositories"
	"ev-trip-service/internal/platform/db"
)

// dbtool initializes and seeds the Postgres catalog database used by
// shared deployments. Local runs seed SQLite at server startup instead.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	seedDir := os.Getenv("SEED_DIR")
	if strings.TrimSpace(seedDir) == "" {
		seedDir = "data/seeds"
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	ctx := context.Background()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchemaPostgres(ctx, pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedPostgresFromJSON(ctx, pool, seedDir); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
