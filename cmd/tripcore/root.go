package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/domain/areas"
	"github.com/FACorreiaa/go-tripcore/internal/app/domain/gazetteer"
	"github.com/FACorreiaa/go-tripcore/internal/app/domain/inventory"
	"github.com/FACorreiaa/go-tripcore/internal/app/services"
	database "github.com/FACorreiaa/go-tripcore/internal/db"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/config"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/logger"
)

// app holds what every subcommand shares. It is filled in by the root
// command's pre-run hook.
type app struct {
	logLevel   string
	paramsFile string
	useDB      bool

	log     *zap.Logger
	pool    *pgxpool.Pool
	planner services.PlannerService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tripcore",
		Short: "Run the trip planning pipeline over preference fixtures",
		Long: `tripcore runs tradeoff detection, area discovery, scheduling and the
quality gate over YAML or JSON fixture files and prints JSON.

Examples:
  tripcore tradeoffs --prefs prefs.yaml
  tripcore areas --prefs prefs.yaml --evidence evidence.yaml
  tripcore areas --prefs prefs.yaml --db --validate-geo --validate-hotels
  tripcore schedule --prefs prefs.yaml
  tripcore check --prefs prefs.yaml --itinerary itinerary.yaml
  tripcore seed --hotels hotels.yaml --places places.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level written to stderr")
	root.PersistentFlags().StringVar(&a.paramsFile, "params", "", "YAML file overriding discovery tunables")
	root.PersistentFlags().BoolVar(&a.useDB, "db", false, "Use the Postgres gazetteer and hotel inventory (POSTGRES_* environment)")

	root.AddCommand(
		newTradeoffsCmd(a),
		newResolveCmd(a),
		newAreasCmd(a),
		newScheduleCmd(a),
		newCheckCmd(a),
		newSeedCmd(a),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	_ = godotenv.Load()

	l, err := logger.NewStderr(logger.ParseLevel(a.logLevel))
	if err != nil {
		return err
	}
	a.log = l

	deps := services.PlannerDeps{}
	if a.paramsFile != "" {
		params, err := areas.LoadParamsFile(a.paramsFile)
		if err != nil {
			return err
		}
		deps.Params = &params
	}

	if a.useDB {
		if err := a.connect(ctx); err != nil {
			return err
		}
		deps.Geocoder = gazetteer.NewRepository(a.pool, a.log)
		deps.Hotels = inventory.NewRepository(a.pool, a.log)
	}

	a.planner = services.NewPlannerService(deps, a.log)
	return nil
}

func (a *app) connect(ctx context.Context) error {
	if a.pool != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	url := database.ConnectionURL(cfg.Repositories.Postgres)
	pool, err := database.Init(url, cfg.Repositories.Postgres, a.log)
	if err != nil {
		return err
	}
	if !database.WaitForDB(ctx, pool, a.log) {
		pool.Close()
		return fmt.Errorf("database at %s:%s is not reachable", cfg.Repositories.Postgres.Host, cfg.Repositories.Postgres.Port)
	}
	if err := database.RunMigrations(url, a.log); err != nil {
		pool.Close()
		return err
	}
	a.pool = pool
	return nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
