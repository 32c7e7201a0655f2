package tasks

import (
	"context"
	"fmt"
	"math/rand/v2"

	hdiscord "github.com/TiltedToast/hifumi/internal/discord"
)

// newStatusRotationTask creates the task that applies a random status from
// the rotation pool as the bot's presence. The pool is re-read on every run
// so additions and removals take effect without a restart.
func newStatusRotationTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "status_rotation")

	return func(ctx context.Context) error {
		statuses, err := deps.Store.GetAllStatuses(ctx)
		if err != nil {
			return fmt.Errorf("failed to load statuses: %w", err)
		}
		if len(statuses) == 0 {
			log.WarnContext(ctx, "No statuses in rotation pool")
			return nil
		}

		status := statuses[rand.IntN(len(statuses))]
		if err := deps.Client.SetPresence(ctx, hdiscord.PresenceOpt(status.Type, status.Text)); err != nil {
			return fmt.Errorf("failed to set presence: %w", err)
		}

		log.DebugContext(ctx, "Set status", "type", status.Type, "text", status.Text)
		return nil
	}
}
