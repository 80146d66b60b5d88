package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	minFPS = 1
	maxFPS = 240
)

type Settings struct {
	Development    bool   `env:"DEVELOPMENT"`
	FPS            int    `env:"MINESWEEPER_FPS" envDefault:"60"`
	Seed           uint64 `env:"MINESWEEPER_SEED"`
	SafeFirstClick bool   `env:"MINESWEEPER_SAFE_FIRST_CLICK"`
}

// Load reads settings from the environment.
func Load() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if s.FPS < minFPS || s.FPS > maxFPS {
		return nil, fmt.Errorf(
			"MINESWEEPER_FPS must be in [%d, %d], got %d", minFPS, maxFPS, s.FPS,
		)
	}
	return &s, nil
}
