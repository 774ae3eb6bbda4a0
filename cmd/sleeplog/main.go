package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/sleeplog/internal/cli"
	"github.com/alexanderramin/sleeplog/internal/config"
	"github.com/alexanderramin/sleeplog/internal/db"
	"github.com/alexanderramin/sleeplog/internal/logging"
	"github.com/alexanderramin/sleeplog/internal/persistence"
	"github.com/alexanderramin/sleeplog/internal/repository"
	"github.com/alexanderramin/sleeplog/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cfg.LogCalls && logging.ParseLevel(level) > zap.InfoLevel {
		// Use-case events are logged at info.
		level = "info"
	}
	logger, err := logging.New(level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Wire the blob store backend
	blobs, closeStore, err := openBlobStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	store := persistence.NewLedgerStore(blobs, cfg.StorageKey, logger.Named("persistence"))

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(logger)
	}

	app := &cli.App{
		Sleep: service.NewSleepService(store, nil, observer),
	}

	// Detect interactive terminal for the delete-day session picker.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

func openBlobStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.BlobStore, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := db.OpenRedis(ctx, db.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using redis store", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
		return repository.NewRedisBlobStore(client), func() { _ = client.Close() }, nil
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		logger.Debug("using sqlite store", zap.String("path", cfg.DBPath))
		return repository.NewSQLiteBlobStore(database), func() { _ = database.Close() }, nil
	}
}
