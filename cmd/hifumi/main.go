// Package main contains the entrypoint for the Hifumi Discord bot.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TiltedToast/hifumi/internal/bot"
	"github.com/TiltedToast/hifumi/internal/bot/handlers"
	"github.com/TiltedToast/hifumi/internal/bot/tasks"
	"github.com/TiltedToast/hifumi/internal/config"
	"github.com/TiltedToast/hifumi/internal/database"
	"github.com/TiltedToast/hifumi/internal/discord"
	"github.com/TiltedToast/hifumi/internal/logger"
	"github.com/TiltedToast/hifumi/internal/prefix"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger, db,
// prefix cache, discord client, scheduler), handles graceful shutdown, and
// returns an exit code.
func run(ctx context.Context) int {
	startTime := time.Now().UTC()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		return 1
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.DBPath, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)
	if err := store.Ping(ctx); err != nil {
		log.Error("Database health check failed", "error", err)
		return 1
	}

	prefixes := prefix.New(cfg.DevMode)
	storedPrefixes, err := store.GetAllPrefixes(ctx)
	if err != nil {
		log.Error("Failed to load prefixes", "error", err)
		return 1
	}
	pairs := make(map[string]string, len(storedPrefixes))
	for _, p := range storedPrefixes {
		pairs[p.GuildID] = p.Prefix
	}
	log.Info("Seeded prefix cache", "guilds", prefixes.Seed(pairs))

	client, err := discord.NewClient(cfg.BotToken, log)
	if err != nil {
		log.Error("Failed to create Discord client", "error", err)
		return 1
	}

	hDeps := handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Store:    store,
		Prefixes: prefixes,
		Reporter: handlers.NewReporter(log, cfg, store),
	}
	client.EventManager().AddEventListeners(
		handlers.NewReadyListener(hDeps, startTime),
		handlers.NewMessageListener(hDeps),
	)

	tDeps := tasks.TaskDeps{
		Logger: log,
		Store:  store,
		Config: cfg,
		Client: client,
	}
	sched, err := bot.NewScheduler(log, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, client, sched)

	log.Info("Starting bot")
	if err := app.Run(ctx); err != nil {
		log.Error("Bot stopped due to error", "error", err)
		return 1
	}

	log.Info("Bot stopped gracefully")
	return 0
}
