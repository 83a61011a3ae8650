package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	httpSwagger "github.com/swaggo/http-swagger"

	"pidash/internal/api/handlers"
	configapp "pidash/internal/config/application"
	sharedlogger "pidash/internal/shared/logger"
	snapshotapp "pidash/internal/snapshot/application"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
	logger     sharedlogger.Logger
}

// NewServer creates a new API server
func NewServer(
	logger sharedlogger.Logger,
	runtimeCfg *configapp.RuntimeConfig,
	snapshotService *snapshotapp.Service,
) (*Server, error) {
	if runtimeCfg.APIPort == "" {
		return nil, fmt.Errorf("API port is required (set PIDASH_API_PORT or use --port flag)")
	}

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(snapshotService)
	metricsHandler := handlers.NewMetricsHandler(snapshotService)
	dockerHandler := handlers.NewDockerHandler(snapshotService)
	cloudflaredHandler := handlers.NewCloudflaredHandler(snapshotService)
	servicesHandler := handlers.NewServicesHandler(snapshotService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Setup chi router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// The dashboard frontend is served from another origin on the LAN,
	// so responses must be readable from anywhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// HTTP logging middleware - need concrete slog.Logger for httplog
	// Type assert to infrastructure logger to get underlying slog.Logger
	var slogLogger *slog.Logger
	if infraLogger, ok := logger.(interface{ SLog() *slog.Logger }); ok {
		slogLogger = infraLogger.SLog()
	} else {
		// Fallback to default if type assertion fails
		slogLogger = slog.Default()
	}

	r.Use(httplog.RequestLogger(slogLogger, &httplog.Options{
		Level:             slog.LevelDebug,
		Schema:            httplog.SchemaECS.Concise(true),
		LogRequestHeaders: []string{}, // Log no headers by default to reduce verbosity
	}))

	// Swagger UI (only in dev mode)
	if runtimeCfg.DevMode {
		swaggerHandler := httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		)
		r.Handle("/swagger/*", swaggerHandler)
		r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
		})
	}

	// API routes, all read-only
	r.Route("/api", func(r chi.Router) {
		r.Get("/system", systemHandler.GetSystem)
		r.Get("/cpu", metricsHandler.GetCPU)
		r.Get("/memory", metricsHandler.GetMemory)
		r.Get("/disk", metricsHandler.GetDisk)
		r.Get("/docker", dockerHandler.GetDocker)
		r.Get("/cloudflared", cloudflaredHandler.GetCloudflared)
		r.Get("/services", servicesHandler.GetServices)
		r.Get("/all", snapshotHandler.GetAll)
		r.Get("/health", snapshotHandler.HealthCheck)
	})

	// The write timeout has to outlast the aggregate endpoint's worst
	// case, where every probe runs into its own deadline back to back
	httpServer := &http.Server{
		Addr:         ":" + runtimeCfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Debug("Server configured",
		"port", runtimeCfg.APIPort,
		"dev_mode", runtimeCfg.DevMode,
		"middleware", []string{"RequestID", "RealIP", "Recoverer", "cors", "httplog"},
	)

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error("Server error", "err", err)
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server shutdown error", "err", err)
	} else {
		s.logger.Info("Server shutdown complete")
	}
	return err
}
