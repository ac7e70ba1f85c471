package infra

import (
	"github.com/cenkalti/backoff"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"gorm.io/gorm"

	postgres_wrapper "github.com/tradecore/matchsim/pkg/infra/postgres"
)

// Migrate runs all pending migrations from source (e.g. file://migration/sql)
// against connStr. A dirty version is forced back one step first.
func Migrate(source string, connStr string) {
	zap.S().Info("migrating...")

	mg, err := migrate.New(source, connStr)
	if err != nil {
		zap.S().Errorf("create migration fail: %v", err)
		panic(err)
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && err != migrate.ErrNilVersion {
		panic(err)
	}
	if dirty {
		mg.Force(int(version) - 1) // nolint
	}

	if err := mg.Up(); err != nil && err != migrate.ErrNoChange {
		panic(err)
	}

	zap.S().Info("migration done")
}

// CreateDBAndMigrate connects with backoff, migrates, and returns the handle.
// Meant for tests and local bootstrap.
func CreateDBAndMigrate(cfg *postgres_wrapper.PostgresConfig, migrationSource string) *gorm.DB {
	var db *gorm.DB
	boff := backoff.NewExponentialBackOff()
	err := backoff.Retry(func() error {
		var errNested error
		db, errNested = postgres_wrapper.InitPostgres(cfg)
		if errNested != nil {
			zap.S().Warnf("connect postgres error: %v", errNested)
		}
		return errNested
	}, boff)
	if err != nil {
		panic(err)
	}

	Migrate(migrationSource, cfg.MigrationConnURL)
	return db
}
