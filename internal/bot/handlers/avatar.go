package handlers

import (
	"context"
	"fmt"

	disc "github.com/disgoorg/disgo/discord"

	"github.com/TiltedToast/hifumi/internal/discord"
)

// newAvatarCommand returns the pfp command, which shows the avatar of the
// mentioned user or of the message author.
func newAvatarCommand(deps HandlerDeps) CommandFunc {
	return func(_ context.Context, cmd *CommandContext) error {
		user, err := targetUser(cmd, 1)
		if err != nil {
			return err
		}

		// Prefer the guild-specific avatar when the target is a member
		// of the current guild.
		var member *disc.Member
		if cmd.GuildID != nil {
			if m, err := cmd.Client.Rest().GetMember(*cmd.GuildID, user.ID); err == nil {
				member = m
			}
		}

		return cmd.ReplyEmbed(disc.Embed{
			Title: fmt.Sprintf("%s's avatar", user.EffectiveName()),
			Color: deps.Config.EmbedColour,
			Image: &disc.EmbedResource{URL: discord.AvatarURL(member, *user)},
		})
	}
}

// targetUser resolves the user a command targets: the mention or ID at the
// given token index, or the message author when the argument is absent.
func targetUser(cmd *CommandContext, idx int) (*disc.User, error) {
	if idx < len(cmd.Content) {
		return discord.FetchUser(cmd.Client.Rest(), cmd.Content[idx])
	}
	author := cmd.Message.Author
	return &author, nil
}
