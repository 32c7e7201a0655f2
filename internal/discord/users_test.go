package discord

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserMention(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected snowflake.ID
		wantErr  bool
	}{
		{
			name:     "plain mention",
			input:    "<@258993932262834188>",
			expected: 258993932262834188,
		},
		{
			name:     "nickname mention",
			input:    "<@!258993932262834188>",
			expected: 258993932262834188,
		},
		{
			name:     "bare snowflake",
			input:    "207505077013839883",
			expected: 207505077013839883,
		},
		{
			name:    "not a number",
			input:   "<@hello>",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, err := ParseUserMention(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}
