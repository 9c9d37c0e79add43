// Package config loads engine configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
)

// Config holds the application configuration.
type Config struct {
	LogLevel  string `validate:"oneof=debug info warn warning error"`
	LogFormat string `validate:"oneof=json text"`
	DataDir   string `validate:"required"`

	// StartingBankroll seeds a fresh session's chip balance.
	StartingBankroll int `validate:"gte=0"`

	// BonusStacking decides how concurrent payout bonuses combine.
	BonusStacking domain.StackingPolicy `validate:"oneof=additive multiplicative"`
}

// Load loads the configuration from environment variables. A .env file is
// honored when present but not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		DataDir:       getEnv("DATA_DIR", "data"),
		BonusStacking: domain.StackingPolicy(getEnv("BONUS_STACKING", string(domain.StackAdditive))),
	}

	bankrollStr := getEnv("STARTING_BANKROLL", "500")
	bankroll, err := strconv.Atoi(bankrollStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STARTING_BANKROLL value: %w", err)
	}
	cfg.StartingBankroll = bankroll

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
