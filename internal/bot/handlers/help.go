package handlers

import (
	"context"
	"fmt"
	"strings"
)

// newHelpCommand returns the help command, listing the available commands
// with the prefix that applies to the current channel.
func newHelpCommand(HandlerDeps) CommandFunc {
	return func(_ context.Context, cmd *CommandContext) error {
		p := cmd.Prefix

		var sb strings.Builder
		sb.WriteString("**Commands:**\n")
		sb.WriteString(fmt.Sprintf("`%sping` - check if I'm alive\n", p))
		sb.WriteString(fmt.Sprintf("`%spfp [user]` - show a user's avatar\n", p))
		sb.WriteString(fmt.Sprintf("`%sprefix <new>` - change the server prefix\n", p))
		sb.WriteString(fmt.Sprintf("`%sstatus <add|remove|list>` - manage statuses (owners only)\n", p))

		return cmd.Reply(sb.String())
	}
}
