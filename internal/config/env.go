package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment defaults of the bounded command; flags override them.
type Config struct {
	Shell       string   `env:"BOUNDED_SHELL"        envDefault:"auto"`
	MultiFormat []string `env:"BOUNDED_MULTI_FORMAT" envDefault:"space" envSeparator:","`
	Output      string   `env:"BOUNDED_OUTPUT"       envDefault:"text"`
	Precision   int      `env:"BOUNDED_PRECISION"    envDefault:"-1"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
