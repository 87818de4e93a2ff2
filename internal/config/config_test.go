package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.LibraryPort)
	assert.Equal(t, "8081", cfg.CinemaPort)
	assert.Equal(t, DefaultAPIKey, cfg.APIKey)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 50, cfg.MaxPageSize)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LIBRARY_PORT", "9090")
	t.Setenv("CINEMA_PORT", "9091")
	t.Setenv("API_KEY", "s3cret")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("MAX_PAGE_SIZE", "20")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.LibraryPort)
	assert.Equal(t, "9091", cfg.CinemaPort)
	assert.Equal(t, "s3cret", cfg.APIKey)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 20, cfg.MaxPageSize)
}
