package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	coreport "github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/usecase/expense"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger.Format, cfg.Logger.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}

	appLogger.Info("Server exited gracefully", nil)
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	repo, closeStore, err := openStorage(ctx, cfg, appLogger, tp)
	if err != nil {
		return err
	}
	defer closeStore()

	service := expense.NewService(repo, appLogger, tp, cfg.Storage.QueueSize)
	defer service.Shutdown()

	expenseHandler := handler.NewExpenseHandler(service, appLogger, cfg.Upload.MaxBytes())
	healthHandler := handler.NewHealthHandler(service)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, expenseHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"storage": cfg.Storage.Driver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// openStorage builds the repository selected by storage.driver together with its cleanup
func openStorage(
	ctx context.Context,
	cfg *config.Config,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
) (persistence.TransactionRepository, func(), error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		return repository.NewMemoryTransactionRepository(), func() {}, nil
	}

	dbManager := database.NewManager(&cfg.Database, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	closeDB := func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}

	if err := dbManager.Migrate(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repository.NewTransactionRepository(dbManager.DB(), appLogger), closeDB, nil
}
