package discord

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceOpt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		statusType string
		expected   discord.ActivityType
	}{
		{"listening", "LISTENING", discord.ActivityTypeListening},
		{"watching", "WATCHING", discord.ActivityTypeWatching},
		{"competing", "COMPETING", discord.ActivityTypeCompeting},
		{"playing", "PLAYING", discord.ActivityTypeGame},
		{"lowercase input", "watching", discord.ActivityTypeWatching},
		{"unknown type degrades to playing", "EATING", discord.ActivityTypeGame},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var update gateway.MessageDataPresenceUpdate
			PresenceOpt(tc.statusType, "some status")(&update)

			require.Len(t, update.Activities, 1)
			assert.Equal(t, tc.expected, update.Activities[0].Type)
			assert.Equal(t, "some status", update.Activities[0].Name)
		})
	}
}
