package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.False(t, cfg.Auth.Enforce)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t,
		"host=localhost user=postgres password= dbname=fuelstation port=5432 sslmode=disable TimeZone=UTC",
		cfg.Database.DSN(),
	)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("AUTH_ENFORCE", "true")
	t.Setenv("DATABASE_URL", "postgres://fuel:fuel@db:5432/fuel")
	t.Setenv("APP_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.True(t, cfg.Auth.Enforce)
	assert.Equal(t, "postgres://fuel:fuel@db:5432/fuel", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logging.Level)
}
