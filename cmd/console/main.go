// The console front-end runs the bot against stdin: every line typed at the
// prompt is processed as a message sent by the owner identity.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Nateu/dotty/internal/bot"
	"github.com/Nateu/dotty/internal/command"
	"github.com/Nateu/dotty/internal/config"
	"github.com/Nateu/dotty/internal/logging"
	"github.com/Nateu/dotty/internal/storage"
	"github.com/Nateu/dotty/internal/user"
)

const consoleChannel = "Main"

func main() {
	cfg, err := config.New()
	if err != nil {
		fallback := logging.New("info", "")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogPath)

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	users, err := user.NewRegistry(store, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load user registry")
	}
	commands := command.NewRegistry(cfg.BotName, logger)

	chat, err := bot.New(cfg.BotName, cfg.OwnerID, users, commands, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build chat bot")
	}

	fmt.Printf("Hello! I'm a bot named %s. Say \"bye\" to leave.\n", chat.Name())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s @ [%s] : ", cfg.OwnerID, consoleChannel)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.EqualFold(line, "bye") {
			fmt.Println("Bye Bye!")
			break
		}

		reply, ok, err := chat.ProcessMessage(bot.Message{Body: line, SentBy: cfg.OwnerID, SentIn: consoleChannel})
		if err != nil {
			logger.Error().Err(err).Msg("failed to process message")
			continue
		}
		if ok {
			fmt.Println(reply)
		}
	}
}
