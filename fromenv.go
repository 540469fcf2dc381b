package prism

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// LoggerFromEnvOption customizes LoggerFromEnv behavior.
type LoggerFromEnvOption func(*loggerFromEnvConfig)

type loggerFromEnvConfig struct {
	prefix  string
	options Options
	writer  io.Writer
}

// WithEnvPrefix overrides the environment variable prefix used by
// LoggerFromEnv. The default is "LOG_".
func WithEnvPrefix(prefix string) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds LoggerFromEnv with explicit Options values.
func WithEnvOptions(opts Options) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.options = opts
	}
}

// WithEnvWriter seeds LoggerFromEnv with a default output writer.
func WithEnvWriter(w io.Writer) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.writer = w
	}
}

// LoggerFromEnv builds a logger from environment variables, allowing optional
// seeded options and writers. Environment values override seeded options.
//
// Recognised variables are: {prefix}LEVEL, HEADER, PREFIX, THEME, NO_COLOR,
// FORCE_COLOR, and OUTPUT. OUTPUT accepts stdout, stderr, or default (the
// seeded writer).
func LoggerFromEnv(opts ...LoggerFromEnvOption) *Logger {
	cfg := loggerFromEnvConfig{prefix: "LOG_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolved := cfg.options
	writer := cfg.writer
	if writer == nil {
		writer = os.Stdout
	}
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "LEVEL"); ok {
		if level, ok := ParseLevel(value); ok {
			resolved.MinLevel = level
		}
	}
	if value, ok := lookupEnv(prefix, "HEADER"); ok {
		resolved.Header = value
	}
	if value, ok := lookupEnv(prefix, "PREFIX"); ok {
		if trimmed := strings.TrimSpace(value); len(trimmed) == 1 {
			resolved.Prefix = trimmed[0]
		}
	}
	if value, ok := lookupEnv(prefix, "THEME"); ok {
		resolved.Theme = ThemeByName(value)
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "OUTPUT"); ok {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "stdout":
			writer = os.Stdout
		case "stderr":
			writer = os.Stderr
		case "default", "":
			// keep the seeded writer
		}
	}
	return NewWithOptions(writer, resolved)
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}
