package handlers

import (
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
)

// NewReadyListener returns the listener that logs gateway readiness,
// including how long startup took relative to process start.
func NewReadyListener(deps HandlerDeps, startTime time.Time) bot.EventListener {
	return bot.NewListenerFunc(func(e *events.Ready) {
		now := time.Now().UTC()

		deps.Logger.Info("Started up",
			"duration_ms", now.Sub(startTime).Milliseconds(),
			"time", now.Format(reportTimeLayout))
		deps.Logger.Info("Logged in",
			"username", e.User.Username,
			"user_id", e.User.ID)

		if deps.Config.DevMode {
			deps.Logger.Info("Running in dev mode")
		} else {
			deps.Logger.Info("Running in production mode")
		}
	})
}
