package env

import (
	"fmt"
	"gacha_calculator/internal/config"
	"os"
	"strconv"
)

const (
	sessionSecretEnvName = "SESSION_SECRET"
	sessionSecureEnvName = "SESSION_SECURE"

	minSessionSecretLen = 16
)

type sessionConfig struct {
	secretKey string
	secure    bool
}

func NewSessionConfig() (config.SessionConfig, error) {
	secret := os.Getenv(sessionSecretEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret key not found")
	}
	if len(secret) < minSessionSecretLen {
		return nil, fmt.Errorf("session secret key must be at least %d bytes", minSessionSecretLen)
	}

	var secure bool
	if raw := os.Getenv(sessionSecureEnvName); len(raw) != 0 {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session secure flag: %w", err)
		}
		secure = parsed
	}

	return &sessionConfig{
		secretKey: secret,
		secure:    secure,
	}, nil
}

func (s *sessionConfig) SecretKey() []byte {
	return []byte(s.secretKey)
}

func (s *sessionConfig) Secure() bool {
	return s.secure
}
