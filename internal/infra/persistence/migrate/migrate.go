// Package migrate runs the schema migrations on startup when enabled.
package migrate

import (
	"fmt"
	"log/slog"

	"storefront/config"
	"storefront/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"
)

// Run applies all pending migrations from the configured directory. It is a
// no-op when migrations are disabled in config.
func Run(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Migrations == nil || !cfg.Migrations.Enabled {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "could not create migration driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cfg.Migrations.Path),
		"postgres",
		driver,
	)
	if err != nil {
		return errors.Wrap(err, "could not create migrate instance")
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "could not run migrations")
	}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "could not read migration version")
	}

	logger.Info("schema migrations applied",
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}
