package env

import (
	"fmt"
	"gacha_calculator/internal/config"
	"log/slog"
	"os"
	"strings"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	logFormatEnvName = "LOG_FORMAT"
	logFileEnvName   = "LOG_FILE"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

type logConfig struct {
	level  slog.Level
	format string
	file   string
}

func NewLogConfig() (config.LogConfig, error) {
	level := slog.LevelInfo
	if raw := os.Getenv(logLevelEnvName); len(raw) != 0 {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	format := strings.ToLower(os.Getenv(logFormatEnvName))
	switch format {
	case "":
		format = LogFormatText
	case LogFormatText, LogFormatJSON:
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	return &logConfig{
		level:  level,
		format: format,
		file:   os.Getenv(logFileEnvName),
	}, nil
}

func (l *logConfig) Level() slog.Level {
	return l.level
}

func (l *logConfig) Format() string {
	return l.format
}

func (l *logConfig) File() string {
	return l.file
}
