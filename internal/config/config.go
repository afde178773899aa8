package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Player   Player `yaml:"player"`
	Engine   Engine `yaml:"engine"`
}

type Player struct {
	// Mark is used when a game is started without naming one.
	Mark string `yaml:"mark" env:"TTT_PLAYER_MARK" env-default:"X"`
}

type Engine struct {
	// Seed for the evaluator's tie-breaks, 0 seeds from the clock.
	Seed uint64 `yaml:"seed" env:"TTT_ENGINE_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads path, then applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
