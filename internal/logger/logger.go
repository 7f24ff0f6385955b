// Package logger собирает slog.Logger по настройкам из окружения.
package logger

import (
	"gacha_calculator/internal/config"
	"gacha_calculator/internal/config/env"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxFileSizeMB  = 10
	maxFileBackups = 3
	maxFileAgeDays = 28
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New возвращает логгер и io.Closer для файла лога (если он настроен).
// Пишет в stdout и, при заданном LOG_FILE, в файл с ротацией
func New(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)

	if cfg.File() != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File(),
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxFileBackups,
			MaxAge:     maxFileAgeDays,
			Compress:   true,
		}
		w = io.MultiWriter(os.Stdout, rotating)
		closer = rotating
	}

	return slog.New(newHandler(w, cfg)), closer
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.Format() == env.LogFormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
