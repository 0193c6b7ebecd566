package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/BikiniBill/RetroTaskRPGCloud/internal/storage"
)

// Config carries the few runtime settings the app accepts. Everything else
// lives in the save document itself.
type Config struct {
	// SaveDir overrides the local save directory.
	SaveDir string `env:"TASKRPG_SAVE_DIR"`
	// CloudDir overrides the detected cloud-drive mirror directory.
	CloudDir string `env:"TASKRPG_CLOUD_DIR"`
	// NoCloud disables the cloud mirror even when a folder is detected.
	NoCloud bool `env:"TASKRPG_NO_CLOUD"`
	// PlayerName seeds the player name on first run only.
	PlayerName string `env:"TASKRPG_PLAYER" envDefault:"Player One"`
}

// Load reads an optional .env file, then the environment, and fills path
// defaults from the OS conventions.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.SaveDir == "" {
		dir, err := storage.DefaultSaveDir()
		if err != nil {
			return nil, err
		}
		cfg.SaveDir = dir
	}
	if cfg.NoCloud {
		cfg.CloudDir = ""
	} else if cfg.CloudDir == "" {
		cfg.CloudDir = storage.DefaultCloudDir()
	}
	return cfg, nil
}
