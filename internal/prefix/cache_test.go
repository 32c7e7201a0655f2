package prefix

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"

	"github.com/TiltedToast/hifumi/internal/config"
)

func TestCacheSeed(t *testing.T) {
	t.Parallel()

	c := New(false)
	n := c.Seed(map[string]string{
		"123456789":   "h!",
		"987654321":   "!!",
		"not-a-flake": "x",
	})

	assert.Equal(t, 2, n, "unparseable guild IDs should be skipped")
	assert.Equal(t, 2, c.Len())

	p, ok := c.Get(snowflake.ID(123456789))
	assert.True(t, ok)
	assert.Equal(t, "h!", p)
}

func TestCacheSetOverwrites(t *testing.T) {
	t.Parallel()

	c := New(false)
	id := snowflake.ID(42)

	c.Set(id, "h!")
	c.Set(id, "??")

	p, ok := c.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "??", p)
	assert.Equal(t, 1, c.Len())
}

func TestCacheSnapshot(t *testing.T) {
	t.Parallel()

	c := New(false)
	c.Set(snowflake.ID(1), "h!")
	c.Set(snowflake.ID(2), "!!")

	snap := c.Snapshot()
	assert.Len(t, snap, 2)
	assert.Equal(t, "h!", snap[snowflake.ID(1)])
	assert.Equal(t, "!!", snap[snowflake.ID(2)])

	// Mutating the copy must not leak back into the cache.
	snap[snowflake.ID(1)] = "???"
	got, ok := c.Get(snowflake.ID(1))
	assert.True(t, ok)
	assert.Equal(t, "h!", got)
}

func TestCacheResolve(t *testing.T) {
	t.Parallel()

	known := snowflake.ID(1)
	upper := snowflake.ID(2)
	unknown := snowflake.ID(3)

	c := New(false)
	c.Set(known, "!!")
	c.Set(upper, "HI!")

	testCases := []struct {
		name     string
		guildID  *snowflake.ID
		expected string
	}{
		{
			name:     "direct message falls back to default",
			guildID:  nil,
			expected: config.DefaultPrefix,
		},
		{
			name:     "unknown guild falls back to default",
			guildID:  &unknown,
			expected: config.DefaultPrefix,
		},
		{
			name:     "known guild returns stored prefix",
			guildID:  &known,
			expected: "!!",
		},
		{
			name:     "stored prefix is lowercased",
			guildID:  &upper,
			expected: "hi!",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, c.Resolve(tc.guildID))
		})
	}
}

func TestCacheResolveDevMode(t *testing.T) {
	t.Parallel()

	id := snowflake.ID(1)
	c := New(true)
	c.Set(id, "!!")

	assert.Equal(t, config.DevPrefix, c.Resolve(&id), "dev mode overrides stored prefixes")
	assert.Equal(t, config.DevPrefix, c.Resolve(nil))
}
