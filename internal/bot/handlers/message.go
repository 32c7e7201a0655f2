// Package handlers contains the bot's message listener, command routing, and
// the individual command implementations.
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/bot"
	disc "github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"

	"github.com/TiltedToast/hifumi/internal/config"
)

// CommandContext carries everything a command needs to run. Content holds the
// whitespace-split, lowercased tokens; Raw holds the same tokens with their
// original casing for commands that store user text.
type CommandContext struct {
	Client    bot.Client
	Message   disc.Message
	ChannelID snowflake.ID
	GuildID   *snowflake.ID

	Content  []string
	Raw      []string
	Command  string
	ReactCmd string
	SubCmd   string
	Prefix   string
}

// CommandFunc is the signature shared by all command implementations.
type CommandFunc func(ctx context.Context, cmd *CommandContext) error

// NewMessageListener returns the listener that turns message-create events
// into command invocations.
func NewMessageListener(deps HandlerDeps) bot.EventListener {
	h := messageHandler{deps: deps, commands: registerCommands(deps)}
	return bot.NewListenerFunc(h.handle)
}

type messageHandler struct {
	deps     HandlerDeps
	commands map[string]CommandFunc
}

func registerCommands(deps HandlerDeps) map[string]CommandFunc {
	return map[string]CommandFunc{
		"ping":   newPingCommand(deps),
		"pfp":    newAvatarCommand(deps),
		"prefix": newPrefixCommand(deps),
		"status": newStatusCommand(deps),
		"help":   newHelpCommand(deps),
	}
}

func (h messageHandler) handle(e *events.MessageCreate) {
	if e.Message.Author.Bot {
		return
	}

	ctx := context.Background()
	if err := h.process(ctx, e); err != nil {
		h.deps.Reporter.Report(ctx, e.Client(), e.Message, e.GuildID, err)

		if _, sendErr := e.Client().Rest().CreateMessage(e.ChannelID, disc.MessageCreate{
			Content: err.Error(),
		}); sendErr != nil {
			h.deps.Logger.Error("Failed to send error message", "channel_id", e.ChannelID, "error", sendErr)
		}
	}
}

func (h messageHandler) process(ctx context.Context, e *events.MessageCreate) error {
	raw := strings.Fields(e.Message.Content)
	if len(raw) == 0 {
		return nil
	}

	content := make([]string, len(raw))
	for i, tok := range raw {
		content[i] = strings.ToLower(tok)
	}

	if e.GuildID != nil {
		if err := h.registerDefaultPrefix(ctx, e, *e.GuildID); err != nil {
			return err
		}
	}

	prefix := h.deps.Prefixes.Resolve(e.GuildID)
	if !strings.HasPrefix(strings.ToLower(e.Message.Content), prefix) {
		return nil
	}

	cmd := &CommandContext{
		Client:    e.Client(),
		Message:   e.Message,
		ChannelID: e.ChannelID,
		GuildID:   e.GuildID,
		Content:   content,
		Raw:       raw,
		Command:   strings.TrimPrefix(content[0], prefix),
		ReactCmd:  reactCommand(content[0]),
		SubCmd:    subCommand(content),
		Prefix:    prefix,
	}

	command, ok := h.commands[cmd.Command]
	if !ok {
		return nil
	}

	h.deps.Logger.Debug("Dispatching command",
		"command", cmd.Command,
		"user_id", e.Message.Author.ID,
		"channel_id", e.ChannelID)

	return command(ctx, cmd)
}

// registerDefaultPrefix assigns the default prefix to guilds seen for the
// first time and announces it, so members know how to address the bot.
func (h messageHandler) registerDefaultPrefix(ctx context.Context, e *events.MessageCreate, guildID snowflake.ID) error {
	if _, ok := h.deps.Prefixes.Get(guildID); ok {
		return nil
	}

	if err := h.deps.Store.UpsertPrefix(ctx, guildID.String(), config.DefaultPrefix); err != nil {
		return fmt.Errorf("failed to register prefix for guild %s: %w", guildID, err)
	}
	h.deps.Prefixes.Set(guildID, config.DefaultPrefix)

	h.deps.Logger.Info("Registered default prefix for new guild", "guild_id", guildID)

	msg := fmt.Sprintf("I have set the prefix to `%[1]s`. You can change it with `%[1]sprefix`", config.DefaultPrefix)
	if _, err := e.Client().Rest().CreateMessage(e.ChannelID, disc.MessageCreate{Content: msg}); err != nil {
		h.deps.Logger.Error("Failed to announce default prefix", "guild_id", guildID, "error", err)
	}
	return nil
}

// reactCommand strips the leading $ from the first token; tokens without it
// yield an empty react command.
func reactCommand(first string) string {
	if !strings.HasPrefix(first, "$") {
		return ""
	}
	return strings.TrimPrefix(first, "$")
}

func subCommand(content []string) string {
	if len(content) < 2 {
		return ""
	}
	return content[1]
}
