package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Server  ServerConfig
	Pokeapi PokeapiConfig
	Cache   CacheConfig
}

type ServerConfig struct {
	Port         string `validate:"required,numeric"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PokeapiConfig struct {
	BaseURL   string `validate:"required,url"`
	SpriteURL string `validate:"required,url"`
	ListLimit int    `validate:"gt=0,lte=2000"`
	Timeout   time.Duration
}

type CacheConfig struct {
	Path string `validate:"required"`
	TTL  time.Duration
}

var validate = validator.New()

// LoadConfig reads configuration from environment variables, filling in
// defaults for anything not set, and validates the result.
func LoadConfig() (*Config, error) {
	listLimit := 151
	if v := os.Getenv("LIST_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LIST_LIMIT: %v", err)
		}
		listLimit = n
	}

	cacheTTL := 24 * time.Hour
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL: %v", err)
		}
		cacheTTL = d
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         envOrDefault("SERVER_PORT", "8080"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Pokeapi: PokeapiConfig{
			BaseURL:   envOrDefault("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2"),
			SpriteURL: envOrDefault("SPRITE_BASE_URL", "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"),
			ListLimit: listLimit,
			Timeout:   10 * time.Second,
		},
		Cache: CacheConfig{
			Path: envOrDefault("CACHE_PATH", "godex.db"),
			TTL:  cacheTTL,
		},
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
