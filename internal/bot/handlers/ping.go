package handlers

import "context"

// newPingCommand returns the ping command, a liveness check.
func newPingCommand(HandlerDeps) CommandFunc {
	return func(_ context.Context, cmd *CommandContext) error {
		return cmd.Reply("Pong!")
	}
}
