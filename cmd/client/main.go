package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-client/internal/aggregator"
	"wallet-client/internal/api"
	"wallet-client/internal/config"
	"wallet-client/internal/policy"
	"wallet-client/internal/repository"
	"wallet-client/internal/service"
	"wallet-client/internal/transfer"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	// .env is optional; a bad -config path just means plain process env.
	if err := config.LoadEnv(); err != nil && !errors.Is(err, config.ErrFileFormat) {
		log.Printf("could not load .env: %v", err)
	}

	var cfg config.Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to process config: %v", err)
	}

	logger := setupLogger(cfg.Env)
	logger.Info("starting wallet client", slog.String("env", cfg.Env))

	store, closeStore, err := initSelectionStore(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize selection store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	client := api.NewHTTPClient(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout)
	wallets := aggregator.New(client, store, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	if err := wallets.Refresh(ctx); err != nil {
		logger.Warn("initial wallet refresh failed", slog.String("error", err.Error()))
	}
	cancel()

	policies := service.Policies{
		Amount:      policy.Amount{DecimalPlaces: 2},
		Description: policy.Description{MaxLength: 500},
		Date:        policy.Date{AllowPast: true, AllowFuture: true, MaxFutureDays: 30, Required: true},
	}
	engine := transfer.Engine{
		MinimumAmount:     decimal.NewFromInt(cfg.Transfer.MinimumAmount),
		AmountPolicy:      policies.Amount,
		DescriptionPolicy: policies.Description,
	}

	_ = service.NewTransactionService(client, wallets, policies, logger)
	_ = service.NewTransferService(client, wallets, engine, logger)
	_ = service.NewShareService(client, wallets, logger)

	logger.Info("wallet client ready",
		slog.Int("wallets", len(wallets.Wallets())),
		slog.Duration("refresh_interval", cfg.Refresh.Interval))

	run(wallets, cfg.Refresh.Interval, logger)
}

// run keeps the wallet cache fresh until the process is told to stop.
func run(wallets *aggregator.WalletAggregator, interval time.Duration, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := wallets.Refresh(ctx); err != nil {
				logger.Warn("periodic wallet refresh failed", slog.String("error", err.Error()))
			}
			cancel()
		case sig := <-quit:
			logger.Info("shutting down", slog.String("signal", sig.String()))
			return
		}
	}
}

func initSelectionStore(cfg config.Config, logger *slog.Logger) (aggregator.SelectionStore, func(), error) {
	if cfg.Database.URL == "" {
		logger.Info("no database configured, wallet selection kept in memory")
		return repository.NewMemorySelectionStore(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}

	store := repository.NewSelectionStore(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, func() { db.Close() }, nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envLocal:
		fallthrough
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
