package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 500, cfg.StartingBankroll)
	assert.Equal(t, domain.StackAdditive, cfg.BonusStacking)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DATA_DIR", "/tmp/lounge")
	t.Setenv("STARTING_BANKROLL", "1000")
	t.Setenv("BONUS_STACKING", "multiplicative")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/lounge", cfg.DataDir)
	assert.Equal(t, 1000, cfg.StartingBankroll)
	assert.Equal(t, domain.StackMultiplicative, cfg.BonusStacking)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad format", "LOG_FORMAT", "xml"},
		{"bad bankroll", "STARTING_BANKROLL", "plenty"},
		{"negative bankroll", "STARTING_BANKROLL", "-10"},
		{"bad stacking", "BONUS_STACKING", "exponential"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
