// Package discord wraps the disgo client setup and small helpers around the
// Discord API surface the bot uses.
package discord

import (
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/gateway"
)

// NewClient creates a disgo client with the gateway intents the bot needs.
// The gateway is opened later by the orchestrator, and event listeners are
// registered through the client's event manager, so construction stays
// side-effect free.
func NewClient(token string, logger *slog.Logger) (bot.Client, error) {
	if token == "" {
		return nil, fmt.Errorf("bot token cannot be empty")
	}

	client, err := disgo.New(token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentsNonPrivileged,
				gateway.IntentGuilds,
				gateway.IntentGuildMembers,
				gateway.IntentGuildEmojisAndStickers,
				gateway.IntentGuildMessages,
				gateway.IntentGuildMessageReactions,
				gateway.IntentMessageContent,
				gateway.IntentDirectMessages,
			),
		),
		bot.WithCacheConfigOpts(
			cache.WithCaches(cache.FlagGuilds|cache.FlagChannels|cache.FlagMembers),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord client: %w", err)
	}

	logger.Info("Discord client created")
	return client, nil
}
