package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/icos-labs/standup-bot/internal/clock"
	"github.com/icos-labs/standup-bot/internal/config"
	"github.com/icos-labs/standup-bot/internal/database"
	"github.com/icos-labs/standup-bot/internal/domain/service"
	"github.com/icos-labs/standup-bot/internal/logger"
	"github.com/icos-labs/standup-bot/internal/slackbot"
	"github.com/icos-labs/standup-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Warn(".env file not found")
	}

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.Environment)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	logger.Log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Log.Fatalf("Failed to run migrations: %v", err)
	}

	dm := database.NewInstance(db)
	clk := clock.New(cfg.UTCOffsetHours)

	api := slack.New(cfg.SlackBotToken, slack.OptionAppLevelToken(cfg.SlackAppToken))
	socket := socketmode.New(api)

	client := slackbot.NewClient(api)
	dialogs := slackbot.NewDialogRegistry(api)

	services := service.NewInstance(dm, client, client, dialogs, clk)

	if err := services.Scheduler.Start(cfg.TickSpec); err != nil {
		logger.Log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer services.Scheduler.Stop()

	bot := slackbot.NewBot(api, socket, client, dialogs, dm, services.Standup)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Log.Info("Shutting down...")
		cancel()
	}()

	if err := bot.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Log.Fatalf("Bot stopped: %v", err)
	}
}
