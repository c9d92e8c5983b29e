package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Window   Window `yaml:"window"`
}

type Window struct {
	Title          string `yaml:"title" env:"WINDOW_TITLE" env-default:"Ultimate Tic-Tac-Toe"`
	TicksPerSecond int    `yaml:"ticks-per-second" env:"TICKS_PER_SECOND" env-default:"10"`
}

// MustLoad - load all configurations in config.yml file.
// The game runs fine without one; defaults and env vars take over.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
