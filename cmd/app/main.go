package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lootvault/vaultsim/internal/config"
	"github.com/lootvault/vaultsim/internal/economy"
	"github.com/lootvault/vaultsim/internal/event"
	"github.com/lootvault/vaultsim/internal/handler"
	"github.com/lootvault/vaultsim/internal/inventory"
	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/market"
	"github.com/lootvault/vaultsim/internal/notify"
	"github.com/lootvault/vaultsim/internal/player"
	"github.com/lootvault/vaultsim/internal/quest"
	"github.com/lootvault/vaultsim/internal/server"
	"github.com/lootvault/vaultsim/internal/store"
	"github.com/lootvault/vaultsim/internal/store/filestore"
	"github.com/lootvault/vaultsim/internal/store/sqlitestore"
	"github.com/lootvault/vaultsim/internal/vault"
)

const shutdownTimeout = 10 * time.Second

// snapshotBackend is what main needs from a storage backend: the snapshot
// port plus a readiness probe.
type snapshotBackend interface {
	store.Snapshots
	handler.HealthChecker
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel, cfg.LogFormat, "vaultsim", handler.Version, cfg.Environment, false))

	snaps, err := openSnapshots(cfg)
	if err != nil {
		slog.Error("Failed to open snapshot store", "error", err, "backend", cfg.StoreBackend)
		os.Exit(1)
	}
	defer snaps.Close()

	vaultCatalog, err := vault.LoadCatalog(cfg.VaultCatalogPath())
	if err != nil {
		slog.Error("Failed to load vault catalog", "error", err, "path", cfg.VaultCatalogPath())
		os.Exit(1)
	}

	questCatalog, err := quest.LoadCatalog(cfg.QuestCatalogPath())
	if err != nil {
		slog.Error("Failed to load quest catalog", "error", err, "path", cfg.QuestCatalogPath())
		os.Exit(1)
	}

	clock := clockwork.NewRealClock()
	bus := event.NewMemoryBus()

	players, err := player.NewManager(snaps, cfg.StoreBackend, clock, market.SeedState)
	if err != nil {
		slog.Error("Failed to create player manager", "error", err)
		os.Exit(1)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	svcs := server.Services{
		Store:         snaps,
		Player:        player.NewService(players, bus),
		Economy:       economy.NewService(players, clock),
		Vault:         vault.NewService(vaultCatalog, questCatalog, players, bus, clock, rnd.Float64),
		Inventory:     inventory.NewService(players, questCatalog, bus, clock),
		Quest:         quest.NewTracker(questCatalog, players, bus, clock),
		Market:        market.NewService(players, questCatalog, bus, clock),
		Notifications: notify.NewCenter(bus, clock),
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, svcs)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// openSnapshots selects the storage backend from configuration.
func openSnapshots(cfg *config.Config) (snapshotBackend, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendSQLite:
		return sqlitestore.New(cfg.DBPath)
	case config.StoreBackendFile:
		return filestore.New(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
