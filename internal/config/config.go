package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type DBConfig interface {
	Driver() string
	DSN() string
}

type SessionConfig interface {
	SecretKey() []byte
	Secure() bool
}

type LogConfig interface {
	Level() slog.Level
	Format() string
	File() string
}

type UIConfig interface {
	Title() string
	// Notice текст уведомления по ключу (см. env.Notice*)
	Notice(key string) string
}
