package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/TiltedToast/hifumi/internal/database"
)

// newStatusCommand returns the owner-only status command for managing the
// presence rotation pool.
func newStatusCommand(deps HandlerDeps) CommandFunc {
	return func(ctx context.Context, cmd *CommandContext) error {
		if !deps.Config.IsOwner(cmd.Message.Author.ID) {
			return cmd.Reply("Only bot owners can manage statuses.")
		}

		switch cmd.SubCmd {
		case "add":
			return addStatus(ctx, deps, cmd)
		case "remove":
			return removeStatus(ctx, deps, cmd)
		case "list":
			return listStatuses(ctx, deps, cmd)
		default:
			return cmd.Reply(fmt.Sprintf("Usage: `%sstatus <add|remove|list>`", cmd.Prefix))
		}
	}
}

func addStatus(ctx context.Context, deps HandlerDeps, cmd *CommandContext) error {
	// Raw tokens keep the user's casing for the status text.
	if len(cmd.Raw) < 4 {
		return cmd.Reply(fmt.Sprintf("Usage: `%sstatus add <playing|listening|watching|competing> <text>`", cmd.Prefix))
	}

	statusType := strings.ToUpper(cmd.Raw[2])
	if !database.ValidStatusType(statusType) {
		return cmd.Reply(fmt.Sprintf("Unknown status type `%s`. Valid types are playing, listening, watching and competing.", cmd.Raw[2]))
	}

	status := &database.Status{
		Type: statusType,
		Text: strings.Join(cmd.Raw[3:], " "),
	}
	if err := deps.Store.AddStatus(ctx, status); err != nil {
		return fmt.Errorf("failed to add status: %w", err)
	}

	deps.Logger.Info("Status added", "id", status.ID, "type", status.Type, "user_id", cmd.Message.Author.ID)
	return cmd.Reply(fmt.Sprintf("Added status `#%d`: %s **%s**", status.ID, strings.ToLower(status.Type), status.Text))
}

func removeStatus(ctx context.Context, deps HandlerDeps, cmd *CommandContext) error {
	if len(cmd.Content) < 3 {
		return cmd.Reply(fmt.Sprintf("Usage: `%sstatus remove <id>`", cmd.Prefix))
	}

	id, err := strconv.ParseInt(cmd.Content[2], 10, 64)
	if err != nil {
		return cmd.Reply(fmt.Sprintf("`%s` is not a valid status ID.", cmd.Content[2]))
	}

	if err := deps.Store.RemoveStatus(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return cmd.Reply(fmt.Sprintf("No status with ID `%d` exists.", id))
		}
		return fmt.Errorf("failed to remove status: %w", err)
	}

	deps.Logger.Info("Status removed", "id", id, "user_id", cmd.Message.Author.ID)
	return cmd.Reply(fmt.Sprintf("Removed status `#%d`", id))
}

// Discord caps messages at 2000 characters; leave headroom for the header.
const maxListLength = 1900

func listStatuses(ctx context.Context, deps HandlerDeps, cmd *CommandContext) error {
	statuses, err := deps.Store.GetAllStatuses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list statuses: %w", err)
	}
	if len(statuses) == 0 {
		return cmd.Reply("No statuses configured.")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%d statuses in rotation:**\n", len(statuses)))
	for _, status := range statuses {
		line := fmt.Sprintf("`#%d` %s **%s**\n", status.ID, strings.ToLower(status.Type), status.Text)
		if sb.Len()+len(line) > maxListLength {
			sb.WriteString("...")
			break
		}
		sb.WriteString(line)
	}

	return cmd.Reply(sb.String())
}
