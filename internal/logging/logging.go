// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level    string
	Console  bool
	File     bool
	FilePath string
	MaxSize  int // megabytes
	MaxAge   int // days
}

// DefaultConfig logs human-readable lines to stderr and rotated JSON lines to
// a file under the user config directory. Stderr keeps the stdout of the
// commands clean for report output.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Level:    "warn",
		Console:  true,
		File:     true,
		FilePath: filepath.Join(home, ".config", "bisttakip", "logs", "btt.log"),
		MaxSize:  20,
		MaxAge:   30,
	}
}

// Setup installs the configured logger as the zerolog global logger.
func Setup(cfg Config) {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
	if cfg.File {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename: cfg.FilePath,
				MaxSize:  cfg.MaxSize,
				MaxAge:   cfg.MaxAge,
				Compress: true,
			})
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stderr
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
