package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"banking-ledger/account"
	"banking-ledger/config"
	"banking-ledger/ledger"
	"banking-ledger/menu"
	"banking-ledger/taxid"
)

func main() {
	// A missing .env is fine; the environment and defaults still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	// The menu owns stdout.
	zapCfg.OutputPaths = []string{"stderr"}
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	validator, err := taxid.NewValidator(cfg.TaxIDCountry)
	if err != nil {
		logger.Fatal("invalid TAX_ID_COUNTRY", zap.Error(err))
	}

	limits := account.Limits{
		PerOperation: cfg.PerOperationLimit,
		Withdrawals:  cfg.WithdrawalLimit,
	}
	l := ledger.New(ledger.Settings{
		Branch: cfg.BranchCode,
		Limits: &limits,
		TaxIDs: validator,
	}, logger)

	opts := []menu.Option{menu.WithLogger(logger)}
	if cfg.NoColor {
		opts = append(opts, menu.WithoutColor())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting banking ledger",
		zap.String("branch", cfg.BranchCode),
		zap.String("per_operation_limit", cfg.PerOperationLimit.String()),
		zap.Int("withdrawal_limit", cfg.WithdrawalLimit))

	// Run blocks on stdin, so a signal has to be able to end main on its own.
	done := make(chan error, 1)
	go func() {
		done <- menu.New(l, os.Stdin, os.Stdout, opts...).Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("menu stopped", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("interrupted, shutting down")
	}
}
