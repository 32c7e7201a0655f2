package database

import (
	"strings"
	"time"
)

// Prefix is the command prefix configured for a single guild. Guild IDs are
// stored as strings, matching how they travel over the Discord API.
type Prefix struct {
	GuildID   string    `db:"guild_id"`
	Prefix    string    `db:"prefix"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Status is a single entry in the presence rotation pool. Type is one of the
// StatusType constants; unknown values degrade to "playing" at use site.
type Status struct {
	ID        int64     `db:"id"`
	Type      string    `db:"type"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

// Status type strings as stored in the database.
const (
	StatusPlaying   = "PLAYING"
	StatusListening = "LISTENING"
	StatusWatching  = "WATCHING"
	StatusCompeting = "COMPETING"
)

// ValidStatusType reports whether s names a known activity type, ignoring case.
func ValidStatusType(s string) bool {
	switch strings.ToUpper(s) {
	case StatusPlaying, StatusListening, StatusWatching, StatusCompeting:
		return true
	}
	return false
}

// ErrorReport is a persisted record of a command failure, referenced from the
// report message sent to the error log channel.
type ErrorReport struct {
	ID        string    `db:"id"`
	GuildID   *string   `db:"guild_id"` // nil for direct messages
	ChannelID string    `db:"channel_id"`
	UserID    string    `db:"user_id"`
	Command   string    `db:"command"`
	Error     string    `db:"error"`
	CreatedAt time.Time `db:"created_at"`
}
