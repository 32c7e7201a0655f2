package discord

import (
	"strings"

	"github.com/disgoorg/disgo/gateway"
)

// PresenceOpt maps a stored status type and text to a gateway presence
// option. Unknown types fall back to a playing activity.
func PresenceOpt(statusType, text string) gateway.PresenceOpt {
	switch strings.ToLower(statusType) {
	case "listening":
		return gateway.WithListeningActivity(text)
	case "watching":
		return gateway.WithWatchingActivity(text)
	case "competing":
		return gateway.WithCompetingActivity(text)
	default:
		return gateway.WithPlayingActivity(text)
	}
}
