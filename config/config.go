package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

const (
	defaultBranchCode        = "0001"
	defaultPerOperationLimit = "500"
	defaultWithdrawalLimit   = 3
	defaultLogLevel          = "info"
)

type Config struct {
	BranchCode        string
	PerOperationLimit decimal.Decimal
	WithdrawalLimit   int
	TaxIDCountry      string
	LogLevel          zapcore.Level
	NoColor           bool
}

// Load reads the configuration from the environment, falling back to
// defaults for unset keys.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	limit, err := decimal.NewFromString(get("PER_OPERATION_LIMIT", defaultPerOperationLimit))
	if err != nil {
		return Config{}, fmt.Errorf("could not parse PER_OPERATION_LIMIT: %w", err)
	}
	if !limit.IsPositive() {
		return Config{}, fmt.Errorf("PER_OPERATION_LIMIT must be positive, got %s", limit)
	}

	withdrawals, err := strconv.Atoi(get("WITHDRAWAL_LIMIT", strconv.Itoa(defaultWithdrawalLimit)))
	if err != nil {
		return Config{}, fmt.Errorf("could not parse WITHDRAWAL_LIMIT: %w", err)
	}
	if withdrawals < 0 {
		return Config{}, fmt.Errorf("WITHDRAWAL_LIMIT must not be negative, got %d", withdrawals)
	}

	level, err := zapcore.ParseLevel(get("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("could not parse LOG_LEVEL: %w", err)
	}

	return Config{
		BranchCode:        get("BRANCH_CODE", defaultBranchCode),
		PerOperationLimit: limit,
		WithdrawalLimit:   withdrawals,
		TaxIDCountry:      get("TAX_ID_COUNTRY", ""),
		LogLevel:          level,
		NoColor:           getenv("NO_COLOR") != "",
	}, nil
}
