package config

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("EXCHANGE_API_KEY", "x")
	t.Setenv("IMGUR_CLIENT_ID", "x")
	t.Setenv("IMGUR_CLIENT_SECRET", "x")
	t.Setenv("REDDIT_CLIENT_ID", "x")
	t.Setenv("REDDIT_CLIENT_SECRET", "x")
	t.Setenv("REDDIT_REFRESH_TOKEN", "x")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, "hifumi.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, EmbedColour, cfg.EmbedColour)
	assert.NotZero(t, cfg.LogChannelID)
	assert.NotEmpty(t, cfg.DevChannelIDs)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEV_MODE", "true")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DOCKER", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.DevMode)
	assert.True(t, cfg.InsideDocker)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadMissingToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadReportsAllMissingCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("EXCHANGE_API_KEY", "")
	t.Setenv("REDDIT_REFRESH_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Exchange API Key")
	assert.Contains(t, err.Error(), "Reddit Refresh Token")
}

func TestLoadInvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
}

func TestIsOwner(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		PrimaryOwnerID: snowflake.ID(1),
		BotOwnerIDs:    []snowflake.ID{2, 3},
	}

	assert.True(t, cfg.IsOwner(snowflake.ID(1)))
	assert.True(t, cfg.IsOwner(snowflake.ID(2)))
	assert.True(t, cfg.IsOwner(snowflake.ID(3)))
	assert.False(t, cfg.IsOwner(snowflake.ID(4)))
}

func TestIsDevChannel(t *testing.T) {
	t.Parallel()

	cfg := &Config{DevChannelIDs: []snowflake.ID{10, 20}}

	assert.True(t, cfg.IsDevChannel(snowflake.ID(10)))
	assert.False(t, cfg.IsDevChannel(snowflake.ID(30)))
}
