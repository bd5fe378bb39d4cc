package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlindqvist/fundscout/internal/config"
)

func TestResolveCredentials_EnvFallbacks(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("GOOGLE_SEARCH_API_KEY", "search-key")
	t.Setenv("GOOGLE_SEARCH_CX", "cx-id")
	t.Setenv("DATABASE_URL", "postgres://localhost/fundscout")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	var cfg config.Config
	require.NoError(t, resolveCredentials(&cfg))

	assert.Equal(t, "gem-key", cfg.APIKey)
	assert.Equal(t, "search-key", cfg.SearchAPIKey)
	assert.Equal(t, "cx-id", cfg.SearchEngineID)
	assert.Equal(t, "postgres://localhost/fundscout", cfg.DatabaseURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestResolveCredentials_ConfigValuesWin(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-gem")
	t.Setenv("GOOGLE_SEARCH_API_KEY", "env-search")
	t.Setenv("GOOGLE_SEARCH_CX", "env-cx")

	cfg := config.Config{
		APIKey:         "cfg-gem",
		SearchAPIKey:   "cfg-search",
		SearchEngineID: "cfg-cx",
	}
	require.NoError(t, resolveCredentials(&cfg))

	assert.Equal(t, "cfg-gem", cfg.APIKey)
	assert.Equal(t, "cfg-search", cfg.SearchAPIKey)
	assert.Equal(t, "cfg-cx", cfg.SearchEngineID)
}

func TestResolveCredentials_MissingSearchKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("GOOGLE_SEARCH_API_KEY", "")
	t.Setenv("GOOGLE_SEARCH_CX", "")

	var cfg config.Config
	err := resolveCredentials(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SEARCH_API_KEY")
}
