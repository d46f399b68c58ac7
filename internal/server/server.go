package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/domain/areas"
	"github.com/FACorreiaa/go-tripcore/internal/app/domain/gazetteer"
	"github.com/FACorreiaa/go-tripcore/internal/app/domain/inventory"
	"github.com/FACorreiaa/go-tripcore/internal/app/services"
	database "github.com/FACorreiaa/go-tripcore/internal/db"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/cache"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/config"
	"github.com/FACorreiaa/go-tripcore/internal/routes"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	dbPool *pgxpool.Pool
	router http.Handler
}

// New creates a new Server instance with all dependencies
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	dbPool, err := s.setupDatabase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}
	s.dbPool = dbPool

	return s, nil
}

// setupDatabase initializes the database connection and runs migrations
func (s *Server) setupDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	s.logger.Info("Setting up database connection and migrations")

	dbConfig, err := database.NewDatabaseConfig(s.cfg, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database configuration: %w", err)
	}

	pool, err := database.Init(dbConfig.ConnectionURL, s.cfg.Repositories.Postgres, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	if !database.WaitForDB(ctx, pool, s.logger) {
		pool.Close()
		return nil, fmt.Errorf("database at %s:%s is not reachable", s.cfg.Repositories.Postgres.Host, s.cfg.Repositories.Postgres.Port)
	}
	s.logger.Info("Connected to Postgres",
		zap.String("host", s.cfg.Repositories.Postgres.Host),
		zap.String("port", s.cfg.Repositories.Postgres.Port),
		zap.String("database", s.cfg.Repositories.Postgres.DB))

	if err = database.RunMigrations(dbConfig.ConnectionURL, s.logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s.logger.Info("Database setup completed successfully")
	return pool, nil
}

// PlannerDependencies builds the planner service over the Postgres-backed
// collaborators and the admission controller for the API.
func (s *Server) PlannerDependencies() routes.Dependencies {
	params := areas.DefaultParams()
	if path := s.cfg.Planner.ParamsFile; path != "" {
		p, err := areas.LoadParamsFile(path)
		if err != nil {
			s.logger.Warn("Could not load planner params, using defaults", zap.String("path", path), zap.Error(err))
		}
		params = p
	}

	planner := services.NewPlannerService(services.PlannerDeps{
		Geocoder: gazetteer.NewRepository(s.dbPool, s.logger),
		Hotels:   inventory.NewRepository(s.dbPool, s.logger),
		Params:   &params,
		CacheTTL: s.cfg.Planner.DiscoveryCacheTTL,
	}, s.logger)

	rl := s.cfg.RateLimit
	return routes.Dependencies{
		Planner:   planner,
		Admission: cache.NewAdmission(rl.Requests, rl.Window, rl.MaxKeys, time.Now, s.logger),
	}
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              ":" + s.cfg.ServerPort,
		Handler:           s.router,
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// GetDBPool returns the database connection pool
func (s *Server) GetDBPool() *pgxpool.Pool {
	return s.dbPool
}

// Close closes all server resources
func (s *Server) Close() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
}
