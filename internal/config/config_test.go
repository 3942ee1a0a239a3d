package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "bluesoft_bank", cfg.DBName)
	assert.Equal(t, "8080", cfg.ServerPort)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "bank")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "bank_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "host=db.internal port=5433 user=bank password=secret dbname=bank_test sslmode=disable",
		cfg.DBConnectionString())
}
