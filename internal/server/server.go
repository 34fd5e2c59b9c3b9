package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hieuluvjingliu/GardenBredN/internal/breeding"
	"github.com/hieuluvjingliu/GardenBredN/internal/database"
	"github.com/hieuluvjingliu/GardenBredN/internal/economy"
	"github.com/hieuluvjingliu/GardenBredN/internal/farm"
	"github.com/hieuluvjingliu/GardenBredN/internal/gacha"
	"github.com/hieuluvjingliu/GardenBredN/internal/handler"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/market"
	"github.com/hieuluvjingliu/GardenBredN/internal/metrics"
	"github.com/hieuluvjingliu/GardenBredN/internal/player"
	"github.com/hieuluvjingliu/GardenBredN/internal/sse"
	"github.com/hieuluvjingliu/GardenBredN/internal/view"
)

// Services bundles everything the router needs.
type Services struct {
	Player   player.Service
	Farm     farm.Service
	Economy  economy.Service
	Market   market.Service
	Breeding breeding.Service
	Gacha    gacha.Service
	View     view.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svcs Services, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	playerHandler := handler.NewPlayerHandler(svcs.Player)
	farmHandler := handler.NewFarmHandler(svcs.Farm)
	economyHandler := handler.NewEconomyHandler(svcs.Economy)
	marketHandler := handler.NewMarketHandler(svcs.Market)
	breedingHandler := handler.NewBreedingHandler(svcs.Breeding)
	gachaHandler := handler.NewGachaHandler(svcs.Gacha)
	viewHandler := handler.NewViewHandler(svcs.View)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Player routes
		r.Route("/player", func(r chi.Router) {
			r.Post("/register", playerHandler.Register)
			r.Get("/", playerHandler.GetByUsername)
			r.Get("/{playerID}", playerHandler.Get)
		})

		// Farm routes
		r.Route("/farm", func(r chi.Router) {
			r.Get("/{playerID}", farmHandler.GetFarm)
			r.Post("/pot", farmHandler.PlacePot)
			r.Post("/plant", farmHandler.Plant)
			r.Post("/harvest", farmHandler.Harvest)
			r.Post("/harvest-all", farmHandler.HarvestAll)
			r.Post("/remove", farmHandler.Remove)
			r.Post("/lock", farmHandler.SetLock)
			r.Post("/steal", farmHandler.Steal)
			r.Post("/floor", farmHandler.BuyFloor)
			r.Post("/trap", farmHandler.BuyTrap)
		})

		// Shop routes
		r.Route("/shop", func(r chi.Router) {
			r.Get("/catalog", economyHandler.Catalog)
			r.Post("/seed", economyHandler.BuySeed)
			r.Post("/pot", economyHandler.BuyPot)
			r.Post("/sell", economyHandler.SellSeed)
		})

		// Market routes
		r.Route("/market", func(r chi.Router) {
			r.Get("/", marketHandler.Browse)
			r.Post("/", marketHandler.List)
			r.Post("/buy", marketHandler.Buy)
			r.Get("/seller/{playerID}", marketHandler.BySeller)
		})

		// Breeding route
		r.Post("/breed", breedingHandler.Breed)

		// Gacha routes
		r.Route("/gacha", func(r chi.Router) {
			r.Get("/{playerID}", gachaHandler.State)
			r.Get("/{playerID}/history", gachaHandler.History)
			r.Post("/roll", gachaHandler.Roll)
		})

		// Snapshot route
		r.Get("/view/{playerID}", viewHandler.Get)

		// Live snapshot stream
		r.Get("/events", sse.Handler(hub, queryPlayerResolver))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// queryPlayerResolver identifies the subscribing player from the player_id
// query parameter. The stream sits behind the API key middleware like every
// other route.
func queryPlayerResolver(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get("player_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
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

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
