package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitpet/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fitpet")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "/api/v1", cfg.APIBase)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRequiredSettings(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Load(context.Background())
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/fitpet")
	t.Setenv("JWT_SECRET", "")
	_, err = config.Load(context.Background())
	assert.Error(t, err)
}

func TestLoadCustomTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fitpet")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL", "15m")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
}
