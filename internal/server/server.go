// Package server wires the HTTP surface: middleware stack, routes and
// graceful lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lootvault/vaultsim/internal/economy"
	"github.com/lootvault/vaultsim/internal/handler"
	"github.com/lootvault/vaultsim/internal/inventory"
	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/market"
	"github.com/lootvault/vaultsim/internal/metrics"
	"github.com/lootvault/vaultsim/internal/notify"
	"github.com/lootvault/vaultsim/internal/player"
	"github.com/lootvault/vaultsim/internal/quest"
	"github.com/lootvault/vaultsim/internal/vault"
)

// Services bundles everything the router needs
type Services struct {
	Store         handler.HealthChecker
	Player        player.Service
	Economy       economy.Service
	Vault         vault.Service
	Inventory     inventory.Service
	Quest         quest.Tracker
	Market        market.Service
	Notifications *notify.Center
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a Server with the full middleware stack and routes
func NewServer(port int, apiKey string, svcs Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, detector))
	r.Use(RateLimitMiddleware(detector))
	r.Use(RequestSizeLimitMiddleware(RequestSizeLimit))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svcs.Store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/player", func(r chi.Router) {
			r.Get("/state", handler.HandleGetPlayerState(svcs.Player))
			r.Post("/reset", handler.HandleResetDemo(svcs.Player))
			r.Post("/prestige", handler.HandlePrestigeUp(svcs.Player))
			r.Post("/tutorial", handler.HandleTutorialSeen(svcs.Player))
		})

		r.Route("/vault", func(r chi.Router) {
			r.Get("/tiers", handler.HandleGetVaultTiers(svcs.Vault))
			r.Post("/purchase", handler.HandlePurchaseVault(svcs.Vault))
			r.Get("/reveal", handler.HandleGetReveal(svcs.Vault))
			r.Post("/claim", handler.HandleClaimReveal(svcs.Vault))
			r.Post("/store", handler.HandleStoreReveal(svcs.Vault))
		})

		r.Get("/inventory", handler.HandleGetInventory(svcs.Inventory))
		r.Post("/inventory/cashout", handler.HandleCashOutItem(svcs.Inventory))
		r.Post("/inventory/ship", handler.HandleShipItem(svcs.Inventory))

		r.Route("/credits", func(r chi.Router) {
			r.Get("/balance", handler.HandleGetBalance(svcs.Economy))
			r.Get("/ledger", handler.HandleGetLedger(svcs.Economy))
			r.Post("/add", handler.HandleAddCredits(svcs.Economy))
		})

		r.Get("/quests", handler.HandleGetQuests(svcs.Quest))
		r.Get("/progression/level", handler.HandleGetLevelInfo(svcs.Player))

		r.Route("/market", func(r chi.Router) {
			r.Get("/listings", handler.HandleGetListings(svcs.Market))
			r.Post("/list", handler.HandleListItem(svcs.Market))
			r.Post("/cancel", handler.HandleCancelListing(svcs.Market))
			r.Post("/buy", handler.HandleBuyListing(svcs.Market))
			r.Get("/auctions", handler.HandleGetAuctions(svcs.Market))
			r.Post("/bid", handler.HandlePlaceBid(svcs.Market))
			r.Post("/settle", handler.HandleSettleAuction(svcs.Market))
		})

		r.Get("/notifications", handler.HandleGetNotifications(svcs.Notifications))
		r.Post("/notifications/dismiss", handler.HandleDismissNotification(svcs.Notifications))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health and metrics endpoints
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, "X-API-Key") || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{"[REDACTED]"}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
