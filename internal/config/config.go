// Package config provides configuration loading and validation for Hifumi.
// Values come from the process environment, optionally seeded from a .env
// file in the working directory.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EmbedColour is the accent colour used for all bot embeds.
const EmbedColour = 0xCE3A9B

// DefaultPrefix is the command prefix assigned to guilds that have not
// configured one, and the fallback for direct messages.
const DefaultPrefix = "h!"

// DevPrefix replaces the guild prefix entirely while running in dev mode, so
// a production instance in the same guild doesn't answer twice.
const DevPrefix = "h?"

// Config holds every runtime setting of the bot. All fields are populated by
// Load; credential fields map 1:1 to environment variables.
type Config struct {
	BotToken string `mapstructure:"bot_token" validate:"required"`

	ExchangeAPIKey     string `mapstructure:"exchange_api_key"`
	ImgurClientID      string `mapstructure:"imgur_client_id"`
	ImgurClientSecret  string `mapstructure:"imgur_client_secret"`
	RedditClientID     string `mapstructure:"reddit_client_id"`
	RedditClientSecret string `mapstructure:"reddit_client_secret"`
	RedditRefreshToken string `mapstructure:"reddit_refresh_token"`

	DevMode      bool `mapstructure:"dev_mode"`
	InsideDocker bool `mapstructure:"-"`

	DBPath string `mapstructure:"db_path" validate:"required"`

	LogLevel  string `mapstructure:"log_level"  validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=json text"`
	LogFile   string `mapstructure:"log_file"`

	// Discord-side wiring. These have fixed defaults matching the hosted
	// bot but stay overridable in code for tests.
	LogChannelID   snowflake.ID   `mapstructure:"-"`
	DevChannelIDs  []snowflake.ID `mapstructure:"-"`
	PrimaryOwnerID snowflake.ID   `mapstructure:"-"`
	BotOwnerIDs    []snowflake.ID `mapstructure:"-"`
	EmbedColour    int            `mapstructure:"-"`
}

// IsOwner reports whether the given user may run owner-only commands.
func (c *Config) IsOwner(id snowflake.ID) bool {
	if id == c.PrimaryOwnerID {
		return true
	}
	for _, owner := range c.BotOwnerIDs {
		if id == owner {
			return true
		}
	}
	return false
}

// IsDevChannel reports whether the channel is one of the development
// channels, which receive error reports directly instead of routing them to
// the log channel.
func (c *Config) IsDevChannel(id snowflake.ID) bool {
	for _, ch := range c.DevChannelIDs {
		if id == ch {
			return true
		}
	}
	return false
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present. The bot token is mandatory; any
// missing third-party credentials are reported together in a single error so
// a misconfigured deployment fails with the full picture at once.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg.InsideDocker = os.Getenv("DOCKER") != ""
	cfg.LogChannelID = defaultLogChannel
	cfg.DevChannelIDs = defaultDevChannels
	cfg.PrimaryOwnerID = defaultPrimaryOwner
	cfg.BotOwnerIDs = defaultSecondaryOwners
	cfg.EmbedColour = EmbedColour

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if missing := cfg.missingCredentials(); len(missing) > 0 {
		return nil, fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))
	}

	slog.Info("configuration loaded",
		"dev_mode", cfg.DevMode,
		"inside_docker", cfg.InsideDocker,
		"db_path", cfg.DBPath,
		"log_level", cfg.LogLevel)

	return cfg, nil
}

// missingCredentials collects every unset third-party credential. The bot can
// technically connect without them, but the command set depends on them, so
// startup fails listing the whole set at once.
func (c *Config) missingCredentials() []string {
	var missing []string

	if c.ExchangeAPIKey == "" {
		missing = append(missing, "Exchange API Key")
	}
	if c.ImgurClientID == "" {
		missing = append(missing, "Imgur Client ID")
	}
	if c.ImgurClientSecret == "" {
		missing = append(missing, "Imgur Client Secret")
	}
	if c.RedditClientID == "" {
		missing = append(missing, "Reddit Client ID")
	}
	if c.RedditClientSecret == "" {
		missing = append(missing, "Reddit Client Secret")
	}
	if c.RedditRefreshToken == "" {
		missing = append(missing, "Reddit Refresh Token")
	}

	return missing
}

var (
	defaultLogChannel   = snowflake.ID(655484804405657642)
	defaultPrimaryOwner = snowflake.ID(258993932262834188)

	defaultSecondaryOwners = []snowflake.ID{
		207505077013839883,
	}

	defaultDevChannels = []snowflake.ID{
		655484859405303809,
		551588329003548683,
		922679249058553857,
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("bot_token", "")
	v.SetDefault("exchange_api_key", "")
	v.SetDefault("imgur_client_id", "")
	v.SetDefault("imgur_client_secret", "")
	v.SetDefault("reddit_client_id", "")
	v.SetDefault("reddit_client_secret", "")
	v.SetDefault("reddit_refresh_token", "")
	v.SetDefault("dev_mode", false)
	v.SetDefault("db_path", "hifumi.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("log_file", "")
}

func bindEnv(v *viper.Viper) {
	// Keys bind to their upper-cased names, matching the original
	// unprefixed variables (BOT_TOKEN, DEV_MODE, ...).
	for _, key := range []string{
		"bot_token",
		"exchange_api_key",
		"imgur_client_id",
		"imgur_client_secret",
		"reddit_client_id",
		"reddit_client_secret",
		"reddit_refresh_token",
		"dev_mode",
		"db_path",
		"log_level",
		"log_format",
		"log_file",
	} {
		// BindEnv only errors on an empty key.
		_ = v.BindEnv(key, strings.ToUpper(key))
	}
}
