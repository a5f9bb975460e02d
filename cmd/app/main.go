package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"roomservice/cmd"
	httpin "roomservice/internal/adapters/in/http"
	"roomservice/internal/adapters/out/postgres/migrations"
	redisout "roomservice/internal/adapters/out/redis"
	"roomservice/internal/jobs"
	"roomservice/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	app := &cli.App{
		Name:  "roomservice",
		Usage: "room service order intake",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API and background jobs",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "manage the database schema",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "apply all pending migrations",
						Action: migrateUp,
					},
					{
						Name:  "down",
						Usage: "roll back migrations",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
						},
						Action: migrateDown,
					},
					{
						Name:   "version",
						Usage:  "print the current schema version",
						Action: migrateVersion,
					},
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(c *cli.Context) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogFormat)

	if cfg.AutoMigrate {
		if err = migrations.Up(cfg.DSN()); err != nil {
			return err
		}
		logger.Info("database schema is up to date")
	}

	gormDB, err := openDatabase(cfg.DSN())
	if err != nil {
		return err
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	app, err := cmd.NewCompositionRoot(cfg, gormDB)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	if admins := app.AdminCount(); admins == 0 {
		logger.Warn("no admin names configured, every user gets the user role")
	} else {
		logger.Info("role policy loaded", "admins", admins, "locale", cfg.AdminNameLocale)
	}

	m := metrics.New()

	var idempotency httpin.IdempotencyStore
	if cfg.RedisAddr != "" {
		store := redisout.NewIdempotencyStore(cfg.RedisAddr, cfg.IdempotencyTTL)
		defer func() { _ = store.Close() }()
		if pingErr := store.Ping(c.Context); pingErr != nil {
			logger.Warn("redis is unreachable, idempotency keys are best effort", "error", pingErr)
		}
		idempotency = store
	}

	createOrder := app.CreateCreateOrderCommandHandler()
	editOrder := app.CreateEditOrderCommandHandler()
	duplicateOrder := app.CreateDuplicateOrderCommandHandler()
	completeOrder := app.CreateCompleteOrderCommandHandler()
	orderStats := app.CreateGetOrderStatsQueryHandler()

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:     &createOrder,
		EditOrder:       &editOrder,
		DuplicateOrder:  &duplicateOrder,
		CompleteOrder:   &completeOrder,
		UserOrders:      app.CreateGetUserOrdersQueryHandler(),
		ActiveOrders:    app.CreateGetActiveOrdersQueryHandler(),
		CompletedOrders: app.CreateGetCompletedOrdersQueryHandler(),
		OrderStats:      orderStats,
	}, idempotency, m, logger)

	e, err := httpin.NewRouter(server, httpin.RouterConfig{
		Logger:           logger,
		Metrics:          m,
		CORSOrigins:      cfg.CORSOrigins,
		ValidateRequests: true,
	})
	if err != nil {
		return err
	}

	jobManager := jobs.NewJobManager(orderStats, m, cfg.StatsSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.Info("http server started", "addr", addr)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func migrateUp(*cli.Context) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	return migrations.Up(cfg.DSN())
}

func migrateDown(c *cli.Context) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	return migrations.Down(cfg.DSN(), c.Int("steps"))
}

func migrateVersion(c *cli.Context) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	version, dirty, err := migrations.Version(cfg.DSN())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)
	return err
}

func openDatabase(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Minute)

	return gormDB, nil
}

func newLogger(format string) *slog.Logger {
	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(os.Stdout, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
