package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/susu3304/cajachica/internal/api"
	"github.com/susu3304/cajachica/internal/bot"
	"github.com/susu3304/cajachica/internal/config"
	"github.com/susu3304/cajachica/internal/conversation"
	"github.com/susu3304/cajachica/internal/events"
	"github.com/susu3304/cajachica/internal/ledger"
	applog "github.com/susu3304/cajachica/internal/log"
	"github.com/susu3304/cajachica/internal/router"
	"github.com/susu3304/cajachica/internal/storage"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCfg := applog.DefaultConfig()
	logCfg.Level = applog.ParseLevel(cfg.LogLevel)
	logCfg.Format = cfg.LogFormat
	logger := applog.New(logCfg)
	applog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run returns instead of exiting so its deferred cleanups always happen
	if err := run(ctx, cfg, logger); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
	logger.Info("shutting down")
}

func run(ctx context.Context, cfg *config.Config, logger *applog.Logger) error {
	// Open ledger store
	store, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open ledger store: %w", err)
	}
	defer closeStore()

	publisher, err := events.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open event publisher: %w", err)
	}
	defer publisher.Close()

	cash := ledger.New(store, publisher, logger)

	// Initialize Discord bot
	discordBot, err := bot.New(cfg.DiscordToken, logger)
	if err != nil {
		return fmt.Errorf("failed to create discord bot: %w", err)
	}

	dispatcher := conversation.NewDispatcher(router.New(router.DefaultRoutes()), cash, discordBot, logger)
	discordBot.Attach(dispatcher)

	// Start Discord bot
	if err := discordBot.Start(); err != nil {
		return fmt.Errorf("failed to start discord bot: %w", err)
	}
	defer discordBot.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Run(gctx)
	})
	if cfg.WebBind != "" {
		apiServer := api.New(cfg.WebBind, cash, logger)
		g.Go(func() error {
			return apiServer.Start(gctx)
		})
	}

	return g.Wait()
}
