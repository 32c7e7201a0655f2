// Package prefix keeps the per-guild command prefixes in memory so message
// handling never has to touch the database on the hot path.
package prefix

import (
	"strings"
	"sync"

	"github.com/disgoorg/snowflake/v2"

	"github.com/TiltedToast/hifumi/internal/config"
)

// Cache is a concurrency-safe guild -> prefix map. The zero value is not
// usable; construct with New.
type Cache struct {
	mu       sync.RWMutex
	prefixes map[snowflake.ID]string
	devMode  bool
}

// New creates an empty cache. In dev mode every resolution returns the dev
// prefix regardless of stored values.
func New(devMode bool) *Cache {
	return &Cache{
		prefixes: make(map[snowflake.ID]string),
		devMode:  devMode,
	}
}

// Seed replaces the cache contents with the given guild/prefix pairs,
// typically loaded from the store at startup. Unparseable guild IDs are
// skipped.
func (c *Cache) Seed(pairs map[string]string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prefixes = make(map[snowflake.ID]string, len(pairs))
	for guildID, p := range pairs {
		id, err := snowflake.Parse(guildID)
		if err != nil {
			continue
		}
		c.prefixes[id] = p
	}
	return len(c.prefixes)
}

// Get returns the stored prefix for a guild and whether one exists.
func (c *Cache) Get(guildID snowflake.ID) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.prefixes[guildID]
	return p, ok
}

// Set stores the prefix for a guild.
func (c *Cache) Set(guildID snowflake.ID, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prefixes[guildID] = prefix
}

// Snapshot returns a copy of the current guild/prefix pairs. The copy is
// safe for the caller to iterate or mutate.
func (c *Cache) Snapshot() map[snowflake.ID]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[snowflake.ID]string, len(c.prefixes))
	for id, p := range c.prefixes {
		out[id] = p
	}
	return out
}

// Len returns the number of cached guilds.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.prefixes)
}

// Resolve returns the prefix that applies to a message. Dev mode forces the
// dev prefix; direct messages and unknown guilds fall back to the default.
// The result is lowercased so it can be compared against lowercased content.
func (c *Cache) Resolve(guildID *snowflake.ID) string {
	if c.devMode {
		return config.DevPrefix
	}
	if guildID == nil {
		return config.DefaultPrefix
	}
	if p, ok := c.Get(*guildID); ok {
		return strings.ToLower(p)
	}
	return config.DefaultPrefix
}
