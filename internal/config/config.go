// Package config resolves the web client's startup configuration from its
// command line and environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"caia-webclient/caia"
)

const (
	DefaultBaseURL         = "http://localhost:8027"
	DefaultShutdownTimeout = 2 * time.Second

	EnvBaseURL  = "WEBCLIENT_BASE_URL"
	EnvLogLevel = "WEBCLIENT_LOG_LEVEL"
)

// ProgramName appears in the usage line.
const ProgramName = "webclient"

type Config struct {
	// Server
	BaseURL string

	// Game
	Player caia.Player

	// Engine invocation: program followed by its arguments.
	Command         []string
	ShutdownTimeout time.Duration

	LogLevel zerolog.Level
}

// ArgsError reports a bad command line. Its message is meant for the user
// as is.
type ArgsError struct {
	Msg string
}

func (e *ArgsError) Error() string { return e.Msg }

func usage() *ArgsError {
	return &ArgsError{Msg: fmt.Sprintf("Usage: %s <player> <command> <args...>", ProgramName)}
}

// FromArgs builds the configuration from the positional arguments
// "<player> <command> [args...]" and the environment.
func FromArgs(args []string) (Config, error) {
	if len(args) < 2 {
		return Config{}, usage()
	}
	player, err := caia.ParsePlayer(args[0])
	if err != nil {
		return Config{}, &ArgsError{Msg: fmt.Sprintf("Player argument must be 1 or 2 (not: %s)", args[0])}
	}

	cfg := Config{
		BaseURL:         baseURLFromEnv(),
		Player:          player,
		Command:         append([]string(nil), args[1:]...),
		ShutdownTimeout: DefaultShutdownTimeout,
	}
	cfg.LogLevel, err = logLevelFromEnv()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func baseURLFromEnv() string {
	raw := strings.TrimSpace(os.Getenv(EnvBaseURL))
	if raw == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(raw, "/")
}

func logLevelFromEnv() (zerolog.Level, error) {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel)))
	if raw == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, raw, err)
	}
	return level, nil
}
