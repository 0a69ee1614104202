package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPListenAddr)
	assert.Equal(t, "cms-api", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "cms-api", cfg.JWTIssuer)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cms")
	t.Setenv("HTTP_LISTEN_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/cms", cfg.DatabaseURL)
	assert.Equal(t, ":9999", cfg.HTTPListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_InvalidBcryptCostFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/cms", JWTSecret: "secret"}
	require.NoError(t, cfg.Validate())

	cfg = &Config{JWTSecret: "secret"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	cfg = &Config{DatabaseURL: "postgres://localhost/cms"}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
