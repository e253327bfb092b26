package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/grocerylist/internal/adapter/driven/memory"
	"github.com/ericfisherdev/grocerylist/internal/adapter/driven/metrics"
	"github.com/ericfisherdev/grocerylist/internal/adapter/driven/notify"
	pgadapter "github.com/ericfisherdev/grocerylist/internal/adapter/driven/postgres"
	sqliteadapter "github.com/ericfisherdev/grocerylist/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/grocerylist/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/grocerylist/internal/adapter/driving/web"
	"github.com/ericfisherdev/grocerylist/internal/application"
	"github.com/ericfisherdev/grocerylist/internal/config"
	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"store", cfg.Store,
		"storage_key", cfg.StorageKey,
		"alert_duration", cfg.AlertDuration,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the record store and run its migrations.
	records, closeRecords, err := openRecordStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRecords()

	// 4. Wire the core: persistence, entry store, presenter, notifier, metrics.
	persist := application.NewEntryPersistence(records, cfg.StorageKey, logger)
	store := application.NewEntryStore(persist, nil)
	view := webhandler.NewListView()
	banner := notify.NewBanner(cfg.AlertDuration, logger)
	defer banner.Stop()
	recorder := metrics.NewRecorder()

	listSvc := application.NewListService(store, view, banner, recorder, logger)

	// 5. Rehydrate the list from storage.
	if err := listSvc.Load(ctx); err != nil {
		return err
	}

	// 6. Register API and GUI routes.
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(listSvc, recorder.Handler(), logger))
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(listSvc, view, banner, logger))

	handler := httphandler.ApplyMiddleware(mux, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	// 7. Log startup complete.
	slog.Info("grocerylist started",
		"listen_addr", cfg.ListenAddr,
		"entries", len(listSvc.Entries()),
	)

	// 8. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 9. Graceful shutdown with 10s timeout for in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	// 10. Log shutdown complete.
	slog.Info("shutdown complete")
	return nil
}

// openRecordStore opens the configured backend, applies migrations, and
// returns the store with a close function for deferred cleanup.
func openRecordStore(ctx context.Context, cfg *config.Config) (driven.RecordStore, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		slog.Warn("using in-memory store, the list will not survive a restart")
		return memory.NewRecordStore(), func() {}, nil

	case config.StorePostgres:
		version, err := pgadapter.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		pool, err := pgadapter.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("postgres connected, migrations complete", "schema_version", version)
		return pgadapter.NewRecordRepo(pool), pool.Close, nil

	case config.StoreSQLite:
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}
		version, err := sqliteadapter.RunMigrations(db.Writer)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		slog.Info("database opened, migrations complete", "path", cfg.DBPath, "schema_version", version)
		return sqliteadapter.NewRecordRepo(db), closeDB, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
