package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, populated from the environment.
// DISCORD_TOKEN is only needed by the Discord front-end and is checked there.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	BotName      string `env:"BOT_NAME" envDefault:"Dotty"`
	OwnerID      string `env:"OWNER_ID,required"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"data/datastore.json"`
	LogPath      string `env:"LOG_PATH"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
