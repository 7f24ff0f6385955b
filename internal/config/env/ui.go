package env

import (
	"errors"
	"fmt"
	"gacha_calculator/internal/config"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const uiConfigEnvName = "UI_CONFIG"

// Ключи текстов уведомлений
const (
	NoticeCalculationSaved = "calculation_saved"
	NoticeHistoryNotFound  = "history_not_found"
	NoticeHistoryDeleted   = "history_deleted"
	NoticeMemoSaved        = "memo_saved"
	NoticeInvalidInput     = "invalid_input"
)

const (
	defaultUIConfigPath = "ui.yaml"
	defaultTitle        = "Gacha probability calculator"
)

var defaultNotices = map[string]string{
	NoticeCalculationSaved: "computation saved",
	NoticeHistoryNotFound:  "history entry not found",
	NoticeHistoryDeleted:   "history entry deleted",
	NoticeMemoSaved:        "memo saved",
	NoticeInvalidInput:     "invalid input",
}

type uiFile struct {
	Title   string            `yaml:"title"`
	Notices map[string]string `yaml:"notices"`
}

type uiConfig struct {
	title   string
	notices map[string]string
}

// UIConfigPath путь к YAML с текстами интерфейса
func UIConfigPath() string {
	if path := os.Getenv(uiConfigEnvName); len(path) != 0 {
		return path
	}
	return defaultUIConfigPath
}

// NewUIConfigFromYAML читает тексты интерфейса из YAML.
// Отсутствующий файл не ошибка, используются тексты по умолчанию
func NewUIConfigFromYAML(path string) (config.UIConfig, error) {
	cfg := &uiConfig{
		title:   defaultTitle,
		notices: make(map[string]string, len(defaultNotices)),
	}
	for k, v := range defaultNotices {
		cfg.notices[k] = v
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read ui config: %w", err)
	}

	var file uiFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse ui config: %w", err)
	}

	if len(file.Title) != 0 {
		cfg.title = file.Title
	}
	for k, v := range file.Notices {
		if _, ok := defaultNotices[k]; !ok {
			return nil, fmt.Errorf("unknown notice key %q", k)
		}
		if len(v) != 0 {
			cfg.notices[k] = v
		}
	}

	return cfg, nil
}

func (u *uiConfig) Title() string {
	return u.title
}

func (u *uiConfig) Notice(key string) string {
	if msg, ok := u.notices[key]; ok {
		return msg
	}
	return key
}
