package handlers

import (
	"context"
	"fmt"
	"strings"
)

const maxPrefixLength = 10

// newPrefixCommand returns the prefix command, which changes the guild's
// command prefix.
func newPrefixCommand(deps HandlerDeps) CommandFunc {
	return func(ctx context.Context, cmd *CommandContext) error {
		if cmd.GuildID == nil {
			return cmd.Reply("This command can only be used in servers.")
		}

		if cmd.SubCmd == "" {
			return cmd.Reply(fmt.Sprintf("The current prefix is `%s`. Use `%sprefix <new prefix>` to change it.", cmd.Prefix, cmd.Prefix))
		}

		newPrefix := strings.ToLower(cmd.SubCmd)
		if len(newPrefix) > maxPrefixLength {
			return cmd.Reply(fmt.Sprintf("Prefixes can be at most %d characters long.", maxPrefixLength))
		}

		if err := deps.Store.UpsertPrefix(ctx, cmd.GuildID.String(), newPrefix); err != nil {
			return fmt.Errorf("failed to update prefix: %w", err)
		}
		deps.Prefixes.Set(*cmd.GuildID, newPrefix)

		deps.Logger.Info("Prefix updated",
			"guild_id", *cmd.GuildID,
			"prefix", newPrefix,
			"user_id", cmd.Message.Author.ID)

		return cmd.Reply(fmt.Sprintf("Prefix set to `%s`", newPrefix))
	}
}
