package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven defaults. Per-invocation choices
// (host vs. join, deck file) come from flags instead.
type Config struct {
	PlayerName  string `env:"CARDTABLE_NAME" envDefault:"Player"`
	ListenAddr  string `env:"CARDTABLE_LISTEN" envDefault:"localhost:8080"`
	CardAPIBase string `env:"CARDTABLE_CARD_API" envDefault:"https://api.scryfall.com"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
