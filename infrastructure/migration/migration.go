// Package migration applies the embedded schema migrations.
package migration

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrations embed.FS

const databaseName = "postgres"

// migrationLogger routes migrate's output through logrus.
type migrationLogger struct{}

func (migrationLogger) Printf(format string, v ...any) {
	logrus.Infof(format, v...)
}

func (migrationLogger) Verbose() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

// Up migrates db to the latest embedded version. An up-to-date schema is not an error.
func Up(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	previous, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "read migration version")
	}
	if dirty {
		return errors.Errorf("database is dirty at version %d, fix it manually before migrating", previous)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logrus.WithField("version", previous).Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	current, _, _ := m.Version()
	logrus.WithFields(logrus.Fields{
		"from": previous,
		"to":   current,
	}).Info("Successfully applied migrations")
	return nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return nil, errors.Wrap(err, "create migrate instance")
	}

	m.Log = migrationLogger{}
	return m, nil
}
