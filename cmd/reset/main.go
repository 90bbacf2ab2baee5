// Command reset wipes the demo player's snapshot so the next run starts
// from the seeded default state.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/lootvault/vaultsim/internal/config"
	"github.com/lootvault/vaultsim/internal/store"
	"github.com/lootvault/vaultsim/internal/store/filestore"
	"github.com/lootvault/vaultsim/internal/store/sqlitestore"
)

const resetTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	backend := getEnv("STORE_BACKEND", config.StoreBackendFile)

	var (
		snaps store.Snapshots
		err   error
	)
	switch backend {
	case config.StoreBackendSQLite:
		snaps, err = sqlitestore.New(getEnv("DB_PATH", "data/vaultsim.db"))
	case config.StoreBackendFile:
		snaps, err = filestore.New(getEnv("DATA_DIR", "data"))
	default:
		log.Fatalf("Unknown STORE_BACKEND %q", backend)
	}
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	defer snaps.Close()

	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	playerID := getEnv("PLAYER_ID", "demo")

	log.Printf("Deleting snapshot for player %q (backend %s)...", playerID, backend)
	if err := snaps.Delete(ctx, playerID); err != nil {
		log.Fatalf("Failed to delete snapshot: %v", err)
	}

	log.Println("Reset complete. The next request re-seeds the demo state.")
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
