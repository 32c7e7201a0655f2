package handlers

import (
	"fmt"

	disc "github.com/disgoorg/disgo/discord"
)

// Reply sends a plain text message to the channel the command came from.
func (cmd *CommandContext) Reply(content string) error {
	if _, err := cmd.Client.Rest().CreateMessage(cmd.ChannelID, disc.MessageCreate{Content: content}); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// ReplyEmbed sends a single embed to the channel the command came from.
func (cmd *CommandContext) ReplyEmbed(embed disc.Embed) error {
	if _, err := cmd.Client.Rest().CreateMessage(cmd.ChannelID, disc.MessageCreate{Embeds: []disc.Embed{embed}}); err != nil {
		return fmt.Errorf("failed to send embed: %w", err)
	}
	return nil
}
