// Package tasks implements the bot's scheduled background tasks and their
// registration.
package tasks

import (
	"log/slog"

	"github.com/disgoorg/disgo/bot"

	"github.com/TiltedToast/hifumi/internal/config"
	"github.com/TiltedToast/hifumi/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
	Client bot.Client
}
