package main

import (
	"os"
	"strings"
	"time"

	"hangman/internal/dictionary"
)

type Config struct {
	Mode               string
	DictionaryFile     string
	DictionaryCapacity int
	RandomSeed         int64 // 0 seeds from crypto/rand
	Port               string
	RateLimitRPS       int
	RateLimitBurst     int
	ShutdownTimeout    time.Duration
	IsProduction       bool
}

// loadConfig reads the configuration from the environment. Values from a
// .env file must already be loaded.
func loadConfig() Config {
	cfg := Config{
		Mode:               strings.ToLower(getEnv("APP_MODE", ModeConsole)),
		DictionaryFile:     getEnv("DICTIONARY_FILE", DefaultDictionaryFile),
		DictionaryCapacity: getEnvInt("DICTIONARY_CAPACITY", dictionary.DefaultCapacity),
		RandomSeed:         getEnvInt64("RANDOM_SEED", 0),
		Port:               getEnv("PORT", DefaultPort),
		RateLimitRPS:       getEnvInt("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		IsProduction:       os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
	}
	if cfg.Mode != ModeConsole && cfg.Mode != ModeHTTP {
		logWarn("Unknown APP_MODE %q, using %s", cfg.Mode, ModeConsole)
		cfg.Mode = ModeConsole
	}
	if cfg.DictionaryCapacity <= 0 {
		logWarn("DICTIONARY_CAPACITY must be positive, using default %d", dictionary.DefaultCapacity)
		cfg.DictionaryCapacity = dictionary.DefaultCapacity
	}
	return cfg
}
