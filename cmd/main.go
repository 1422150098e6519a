package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hellofresh/health-go/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/internal/api"
	"github.com/avdeevko/taskhub/internal/config"
	"github.com/avdeevko/taskhub/internal/db"
	"github.com/avdeevko/taskhub/internal/repository"
	"github.com/avdeevko/taskhub/internal/service"
	"github.com/avdeevko/taskhub/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// .env is optional, real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logger.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting application", zap.String("env", cfg.Env))

	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err = pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	logger.Info("database connection established")

	if err = runMigrations(cfg); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	logger.Info("migrations applied")

	transactor := db.NewPgxTransactor(pool)

	projectRepo := repository.NewPgxProjectRepository(pool)
	taskRepo := repository.NewPgxTaskRepository(pool)
	userRepo := repository.NewPgxUserRepository(pool)
	teamRepo := repository.NewPgxTeamRepository(pool)

	projects := service.NewProjectService().WithProjectRepo(projectRepo)
	tasks := service.NewTaskService().WithTaskRepo(taskRepo).WithUserRepo(userRepo)
	users := service.NewUserService().WithUserRepo(userRepo)
	teams := service.NewTeamService(transactor).WithTeamRepo(teamRepo).WithUserRepo(userRepo)
	search := service.NewSearchService().WithTaskRepo(taskRepo).WithProjectRepo(projectRepo).WithUserRepo(userRepo)

	healthChecker := api.MustNewHealthChecker(health.Config{
		Name:    "postgres",
		Timeout: 5 * time.Second,
		Check: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
	})

	e := echo.New()
	e.HideBanner = true

	handler := api.NewHandler(logger).
		WithProjectService(projects).
		WithTaskService(tasks).
		WithUserService(users).
		WithTeamService(teams).
		WithSearchService(search).
		WithHealthChecker(healthChecker)

	handler.RegisterRoutes(e, cfg)

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
