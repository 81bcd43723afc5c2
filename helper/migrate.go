package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"linka/config"
	"linka/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	migrationSource = "file://migrations/postgres"

	actionUp     = "up"
	actionDown   = "down"
	actionStepUp = "step-up"
	actionDrop   = "drop"
)

var errUnknownAction = errors.New("unknown migration action")

func connectionString(config *config.Config) string {
	extra := url.Values{}
	if config.DB.Postgres.MigrationTable != "" {
		extra.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	return postgres.WriteEndpoint(config).DSN(extra)
}

// Runner applies one migration action against the write database.
func Runner(config *config.Config, action string) error {
	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case actionUp:
		err = mig.Up()
	case actionDown:
		err = mig.Steps(-1)
	case actionStepUp:
		err = mig.Steps(1)
	case actionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", errUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, actionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, actionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, actionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, actionDrop)
}
