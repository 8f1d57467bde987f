package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/forum-tweet-bot/internal/app"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

const stopTimeout = 30 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		os.Exit(1)
	}
	log := logger.New(logger.Opts{Env: cfg.App.Env})

	bot := fx.New(
		fx.Logger(log),
		app.Module,
	)

	if err := bot.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Info("Shutting down")

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := bot.Stop(stopCtx); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
