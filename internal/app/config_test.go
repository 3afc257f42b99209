package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GITHUB_CLIENT_ID", "cid")
	t.Setenv("GITHUB_CLIENT_SECRET", "csecret")
	t.Setenv("JWT_SECRET", "sekrit")
	t.Setenv("PORT", "9090")
	t.Setenv("HOUSEKEEPING_INTERVAL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "cid", cfg.GitHubClientID)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.HousekeepingInterval)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	t.Setenv("GITHUB_CLIENT_ID", "")
	t.Setenv("GITHUB_CLIENT_SECRET", "csecret")
	t.Setenv("JWT_SECRET", "sekrit")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "GITHUB_CLIENT_ID")

	t.Setenv("GITHUB_CLIENT_ID", "cid")
	t.Setenv("JWT_SECRET", "")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "JWT_SECRET")
}
