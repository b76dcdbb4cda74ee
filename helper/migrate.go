package helper

//nolint:revive
import (
	"cafe/config"
	"cafe/infras/database"
	"cafe/migrations"
	"cafe/shared/constant"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

func databaseURL(config *config.Config) (string, error) {
	switch config.DB.Driver {
	case constant.DriverSQLite:
		return fmt.Sprintf("sqlite://%s?x-migrations-table=%s",
			config.DB.SQLite.File,
			url.QueryEscape(config.DB.MigrationTable),
		), nil
	case constant.DriverPostgres:
		return fmt.Sprintf("%s&x-migrations-table=%s",
			database.PostgresWriteDSN(config),
			url.QueryEscape(config.DB.MigrationTable),
		), nil
	default:
		return "", fmt.Errorf("%w: %q", database.ErrUnsupportedDriver, config.DB.Driver)
	}
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	dbURL, err := databaseURL(config)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrations.FS, config.DB.Driver)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	var run func() error

	switch action {
	case ActionUp:
		run = mig.Up
	case ActionDown:
		run = func() error { return mig.Steps(-1) }
	case ActionStepUp:
		run = func() error { return mig.Steps(1) }
	case ActionDrop:
		run = mig.Down
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if err := run(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().
		Str("driver", config.DB.Driver).
		Str("action", action).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Database migrations applied")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
