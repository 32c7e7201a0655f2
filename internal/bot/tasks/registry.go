package tasks

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ScheduledTaskFunc defines the standard signature for all scheduled tasks.
// The context provided by the scheduler should be respected for cancellation.
type ScheduledTaskFunc func(ctx context.Context) error

// Task pairs a task function with the gocron job definition that drives it.
type Task struct {
	Definition gocron.JobDefinition
	Run        ScheduledTaskFunc
}

// RegisterAllTasks initializes and returns a map of all scheduled tasks,
// keyed by the identifier used in logs.
func RegisterAllTasks(deps TaskDeps) map[string]Task {
	tasks := map[string]Task{
		// The original rotates the presence at a random interval between
		// 5 and 15 minutes.
		"status_rotation": {
			Definition: gocron.DurationRandomJob(5*time.Minute, 15*time.Minute),
			Run:        newStatusRotationTask(deps),
		},
		"db_maintenance": {
			Definition: gocron.DurationJob(24 * time.Hour),
			Run:        newMaintenanceTask(deps),
		},
	}

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
