package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

func Parse() (Config, error) {
	// .env is optional; real environment wins over it.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate cfg: %v", err)
	}

	return cfg, nil
}
