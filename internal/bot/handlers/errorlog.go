package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/bot"
	disc "github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/google/uuid"

	"github.com/TiltedToast/hifumi/internal/config"
	"github.com/TiltedToast/hifumi/internal/database"
)

const reportTimeLayout = "02/01/2006 15:04:05 UTC"

// Reporter delivers command failures to the error log channel, mirrors them
// into the structured log, and persists them for later inspection. It never
// returns an error itself; delivery failures are logged and swallowed.
type Reporter struct {
	logger *slog.Logger
	cfg    *config.Config
	store  database.Store
}

// NewReporter creates an error reporter.
func NewReporter(logger *slog.Logger, cfg *config.Config, store database.Store) *Reporter {
	return &Reporter{
		logger: logger.With("component", "error_reporter"),
		cfg:    cfg,
		store:  store,
	}
}

// Report handles a single command failure. Reports go to the configured log
// channel, except in dev channels where they stay local to ease debugging.
func (r *Reporter) Report(ctx context.Context, client bot.Client, msg disc.Message, guildID *snowflake.ID, cmdErr error) {
	reportID := uuid.NewString()
	now := time.Now().UTC()

	guildName := "Direct Message"
	guildIDStr := "Unknown"
	if guildID != nil {
		guildIDStr = guildID.String()
		if guild, ok := client.Caches().Guild(*guildID); ok {
			guildName = guild.Name
		}
	}

	channelName := "Unknown"
	if channel, ok := client.Caches().Channel(msg.ChannelID); ok {
		channelName = channel.Name()
	}

	r.logger.Error("Command failed",
		"report_id", reportID,
		"guild", guildName,
		"guild_id", guildIDStr,
		"channel", channelName,
		"user", msg.Author.Username,
		"user_id", msg.Author.ID,
		"command", msg.Content,
		"error", cmdErr)

	report := &database.ErrorReport{
		ID:        reportID,
		ChannelID: msg.ChannelID.String(),
		UserID:    msg.Author.ID.String(),
		Command:   msg.Content,
		Error:     cmdErr.Error(),
	}
	if guildID != nil {
		s := guildID.String()
		report.GuildID = &s
	}
	if err := r.store.SaveErrorReport(ctx, report); err != nil {
		r.logger.Error("Failed to persist error report", "report_id", reportID, "error", err)
	}

	text := fmt.Sprintf("An Error occurred on %s\n", now.Format(reportTimeLayout)) +
		fmt.Sprintf("**Server:** %s - %s\n", guildName, guildIDStr) +
		fmt.Sprintf("**Room:** %s\n", channelName) +
		fmt.Sprintf("**User:** %s - %s\n", msg.Author.Username, msg.Author.ID) +
		fmt.Sprintf("**Command used:** %s\n", msg.Content) +
		fmt.Sprintf("**Error:** %s\n", cmdErr) +
		fmt.Sprintf("**Reference:** %s", reportID)

	dest := r.cfg.LogChannelID
	if r.cfg.IsDevChannel(msg.ChannelID) {
		dest = msg.ChannelID
	}

	if _, err := client.Rest().CreateMessage(dest, disc.MessageCreate{Content: text}); err != nil {
		r.logger.Error("Failed to deliver error report", "report_id", reportID, "channel_id", dest, "error", err)
	}
}
