package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"ev-trip-service/internal/adapters/cache"
	"ev-trip-service/internal/adapters/geocode"
	"ev-trip-service/internal/adapters/repositories"
	"ev-trip-service/internal/api"
	"ev-trip-service/internal/config"
	"ev-trip-service/internal/ports"
)

// main is the application composition root. It wires concrete adapters
// (SQLite, Redis, Nominatim) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := openDB(cfg.Database.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the reference catalogs on startup for
	// local runs. Seeding is an upsert, so restarts are safe.
	if err := initAndSeed(db, cfg.Database.SeedDir); err != nil {
		log.Fatal(err)
	}

	// Geocode lookups hit an external service; cache them in Redis when
	// configured, otherwise in the local SQLite database.
	var geocodeCache ports.GeocodeCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatalf("redis ping failed: %v", err)
		}
		cancel()

		geocodeCache = cache.NewRedisGeocodeCache(client, cfg.Redis.CacheTTL)
		log.Println("geocode cache: redis")
	} else {
		geocodeCache = cache.NewSqliteGeocodeCache(db)
		log.Println("geocode cache: sqlite")
	}

	geocoder, err := geocode.NewNominatimGeocoder(
		cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.Geocoder.Timeout, geocodeCache,
	)
	if err != nil {
		log.Fatal(err)
	}

	vehicles := repositories.NewSqliteVehicleRepository(db)
	stations := repositories.NewSqliteStationRepository(db)
	ferries := repositories.NewSqliteFerryRepository(db)

	router := api.NewRouter(vehicles, stations, ferries, geocoder)

	srv := &http.Server{
		Addr:              cfg.Server.ServerAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Server listening addr=%s", cfg.Server.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open db: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedDir string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedDir); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
