package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	DefaultSearchDepth    = 4
	DefaultMaxSearchDepth = 6
	DefaultTurnDelay      = 500 * time.Millisecond
)

// ServerConfig holds all configuration values of the analysis server.
type ServerConfig struct {
	ServerHost string
	ServerPort string

	// Token protects the API routes. Authentication is disabled when it is empty.
	Token   string
	Prefork bool

	// RedisURL and PostgresURL are optional, the related routes are unavailable without them.
	RedisURL    string
	PostgresURL string

	// MaxSearchDepth caps the depth clients can request.
	MaxSearchDepth int
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:     getEnvMust("FLIPPY_SERVER_HOST"),
		ServerPort:     getEnvMust("FLIPPY_SERVER_PORT"),
		Token:          os.Getenv("FLIPPY_SERVER_TOKEN"),
		Prefork:        getEnvMustBool("FLIPPY_SERVER_PREFORK"),
		RedisURL:       os.Getenv("FLIPPY_REDIS_URL"),
		PostgresURL:    os.Getenv("FLIPPY_POSTGRES_URL"),
		MaxSearchDepth: getEnvIntDefault("FLIPPY_MAX_SEARCH_DEPTH", DefaultMaxSearchDepth),
	}
}

// GameConfig holds the settings of the console game.
type GameConfig struct {
	TurnDelay   time.Duration
	SearchDepth int
}

func LoadGameConfig() *GameConfig {
	return &GameConfig{
		TurnDelay:   getEnvDurationDefault("FLIPPY_TURN_DELAY", DefaultTurnDelay),
		SearchDepth: getEnvIntDefault("FLIPPY_SEARCH_DEPTH", DefaultSearchDepth),
	}
}

type TournamentConfig struct {
	PostgresURL string
}

func LoadTournamentConfig() *TournamentConfig {
	return &TournamentConfig{
		PostgresURL: os.Getenv("FLIPPY_POSTGRES_URL"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

// getEnvIntDefault returns the environment variable as a non-negative int, or fallback if it is not set.
func getEnvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		slog.Error("Cannot load environment variable, it must be a non-negative integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}

func getEnvDurationDefault(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed < 0 {
		slog.Error("Cannot load environment variable, it must be a duration like \"500ms\"", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
