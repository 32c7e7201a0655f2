package handlers

import (
	"log/slog"

	"github.com/TiltedToast/hifumi/internal/config"
	"github.com/TiltedToast/hifumi/internal/database"
	"github.com/TiltedToast/hifumi/internal/prefix"
)

// HandlerDeps provides dependencies for message and command handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Store    database.Store
	Prefixes *prefix.Cache
	Reporter *Reporter
}
