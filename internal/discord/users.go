package discord

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// ParseUserMention extracts a user ID from a raw mention (<@id> or <@!id>)
// or a bare snowflake string.
func ParseUserMention(s string) (snowflake.ID, error) {
	s = strings.TrimPrefix(s, "<@")
	s = strings.TrimPrefix(s, "!")
	s = strings.TrimSuffix(s, ">")

	id, err := snowflake.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID %q: %w", s, err)
	}
	return id, nil
}

// FetchUser resolves a user over REST from a mention or ID string.
func FetchUser(client rest.Rest, arg string) (*discord.User, error) {
	id, err := ParseUserMention(arg)
	if err != nil {
		return nil, err
	}

	user, err := client.GetUser(id)
	if err != nil {
		return nil, fmt.Errorf("user %s not found: %w", id, err)
	}
	return user, nil
}

// AvatarURL returns the best avatar for a user in a guild context, at the
// largest size the CDN serves. Guild-specific avatars take priority over the
// account avatar.
func AvatarURL(member *discord.Member, user discord.User) string {
	if member != nil && member.Avatar != nil {
		if url := member.AvatarURL(discord.WithSize(4096)); url != nil {
			return *url
		}
	}
	return user.EffectiveAvatarURL(discord.WithSize(4096))
}
