package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "3003", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "none", cfg.JWTExpiry)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)
}

func TestValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "topsecret")
	t.Setenv("DB_DRIVER", DriverSQLite)

	cfg := Load()
	require.NoError(t, cfg.Validate())

	cfg.DBDriver = "oracle"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownDBDriver)

	cfg.DBDriver = DriverMySQL
	cfg.JWTExpiry = "soon"
	assert.Error(t, cfg.Validate())

	cfg.JWTExpiry = "-1h"
	assert.Error(t, cfg.Validate())
}

func TestTokenExpiry(t *testing.T) {
	cases := map[string]time.Duration{
		"":     0,
		"none": 0,
		"NONE": 0,
		"0":    0,
		"24h":  24 * time.Hour,
		"90m":  90 * time.Minute,
	}

	for input, want := range cases {
		cfg := &Config{JWTExpiry: input}
		got, err := cfg.TokenExpiry()
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestShutdownWindow(t *testing.T) {
	cfg := &Config{JWTSecret: "topsecret", DBDriver: DriverSQLite, ShutdownTimeout: "30s"}
	got, err := cfg.ShutdownWindow()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, got)

	for _, bad := range []string{"", "soon", "-5s"} {
		cfg.ShutdownTimeout = bad
		_, err := cfg.ShutdownWindow()
		assert.Error(t, err, bad)
		assert.Error(t, cfg.Validate(), bad)
	}
}
