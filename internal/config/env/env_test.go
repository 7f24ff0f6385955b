package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "0.0.0.0")
	t.Setenv(httpPortEnvName, "8080")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestNewHTTPConfigDefaults(t *testing.T) {
	t.Setenv(httpPortEnvName, "")
	t.Setenv(httpHostEnvName, "")
	require.NoError(t, os.Unsetenv(httpHostEnvName))

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:5000", cfg.Address())
}

func TestNewDBConfig(t *testing.T) {
	t.Run("sqlite default", func(t *testing.T) {
		t.Setenv(dbDriverEnvName, "")
		t.Setenv(dbDSNEnvName, "")

		cfg, err := NewDBConfig()
		require.NoError(t, err)
		assert.Equal(t, DriverSQLite, cfg.Driver())
		assert.Equal(t, defaultSQLiteDSN, cfg.DSN())
	})

	t.Run("postgres requires dsn", func(t *testing.T) {
		t.Setenv(dbDriverEnvName, DriverPostgres)
		t.Setenv(dbDSNEnvName, "")

		_, err := NewDBConfig()
		require.Error(t, err)
	})

	t.Run("postgres", func(t *testing.T) {
		t.Setenv(dbDriverEnvName, DriverPostgres)
		t.Setenv(dbDSNEnvName, "postgres://localhost/gacha")

		cfg, err := NewDBConfig()
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost/gacha", cfg.DSN())
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv(dbDriverEnvName, "oracle")

		_, err := NewDBConfig()
		require.Error(t, err)
	})
}

func TestNewSessionConfig(t *testing.T) {
	t.Setenv(sessionSecretEnvName, "")
	_, err := NewSessionConfig()
	require.Error(t, err)

	t.Setenv(sessionSecretEnvName, "short")
	_, err = NewSessionConfig()
	require.Error(t, err)

	t.Setenv(sessionSecretEnvName, "0123456789abcdef0123")
	t.Setenv(sessionSecureEnvName, "true")
	cfg, err := NewSessionConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abcdef0123"), cfg.SecretKey())
	assert.True(t, cfg.Secure())

	t.Setenv(sessionSecureEnvName, "maybe")
	_, err = NewSessionConfig()
	require.Error(t, err)
}

func TestNewLogConfig(t *testing.T) {
	t.Setenv(logLevelEnvName, "debug")
	t.Setenv(logFormatEnvName, "JSON")
	t.Setenv(logFileEnvName, "/tmp/gacha.log")

	cfg, err := NewLogConfig()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, LogFormatJSON, cfg.Format())
	assert.Equal(t, "/tmp/gacha.log", cfg.File())

	t.Setenv(logFormatEnvName, "xml")
	_, err = NewLogConfig()
	require.Error(t, err)

	t.Setenv(logFormatEnvName, "")
	t.Setenv(logLevelEnvName, "loud")
	_, err = NewLogConfig()
	require.Error(t, err)
}

func TestNewUIConfigFromYAML(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := NewUIConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, defaultTitle, cfg.Title())
		assert.Equal(t, "memo saved", cfg.Notice(NoticeMemoSaved))
	})

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ui.yaml")
		data := "title: ガチャ確率計算\nnotices:\n  memo_saved: メモを保存しました。\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		cfg, err := NewUIConfigFromYAML(path)
		require.NoError(t, err)
		assert.Equal(t, "ガチャ確率計算", cfg.Title())
		assert.Equal(t, "メモを保存しました。", cfg.Notice(NoticeMemoSaved))
		assert.Equal(t, "computation saved", cfg.Notice(NoticeCalculationSaved))
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ui.yaml")
		require.NoError(t, os.WriteFile(path, []byte("notices:\n  oops: x\n"), 0o600))

		_, err := NewUIConfigFromYAML(path)
		require.Error(t, err)
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ui.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: [unclosed"), 0o600))

		_, err := NewUIConfigFromYAML(path)
		require.Error(t, err)
	})
}
