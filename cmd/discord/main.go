package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nateu/dotty/internal/bot"
	"github.com/Nateu/dotty/internal/command"
	"github.com/Nateu/dotty/internal/config"
	"github.com/Nateu/dotty/internal/discord"
	"github.com/Nateu/dotty/internal/logging"
	"github.com/Nateu/dotty/internal/storage"
	"github.com/Nateu/dotty/internal/user"
	"github.com/Nateu/dotty/internal/version"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fallback := logging.New("info", "")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogPath)
	logger.Info().Str("version", version.Version).Msgf("starting %s bot", version.AppName)

	if cfg.DiscordToken == "" {
		logger.Fatal().Msg("DISCORD_TOKEN is not set")
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	if err := store.EnsureOwner(cfg.OwnerID); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed owner profile")
	}

	users, err := user.NewRegistry(store, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load user registry")
	}
	commands := command.NewRegistry(cfg.BotName, logger)

	chat, err := bot.New(cfg.BotName, cfg.OwnerID, users, commands, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build chat bot")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- discord.StartBot(ctx, cfg.DiscordToken, chat, logger)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info().Msgf("received signal %s, shutting down", s)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("discord bot error")
		}
		cancel()
	}

	logger.Info().Msg("discord bot exited")
}
