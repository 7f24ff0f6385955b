package env

import (
	"fmt"
	"gacha_calculator/internal/config"
	"os"
)

const (
	dbDriverEnvName = "DB_DRIVER"
	dbDSNEnvName    = "DB_DSN"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSQLiteDSN = "gacha.db"
)

type dbConfig struct {
	driver string
	dsn    string
}

func NewDBConfig() (config.DBConfig, error) {
	driver := os.Getenv(dbDriverEnvName)
	if len(driver) == 0 {
		driver = DriverSQLite
	}

	dsn := os.Getenv(dbDSNEnvName)

	switch driver {
	case DriverSQLite:
		if len(dsn) == 0 {
			dsn = defaultSQLiteDSN
		}
	case DriverPostgres:
		if len(dsn) == 0 {
			return nil, fmt.Errorf("db dsn not found")
		}
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	return &dbConfig{
		driver: driver,
		dsn:    dsn,
	}, nil
}

func (cfg *dbConfig) Driver() string {
	return cfg.driver
}

func (cfg *dbConfig) DSN() string {
	return cfg.dsn
}
