package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"linka/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	maxIdleConnections = 10
	maxOpenConnections = 25
	connMaxLifetime    = 30 * time.Minute
)

var errNotConnected = errors.New("database connection is not established")

// Endpoint is one side of the read/write split.
type Endpoint struct {
	Name     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the endpoint as a postgres:// URL. Credentials are escaped.
func (e Endpoint) DSN(extra url.Values) string {
	query := url.Values{}
	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     e.Database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// WriteEndpoint and ReadEndpoint apply DB_POSTGRES_PREFIX to the database name.
func WriteEndpoint(cfg *config.Config) Endpoint {
	w := cfg.DB.Postgres.Write

	return Endpoint{Name: "write", Host: w.Host, Port: w.Port, Username: w.Username, Password: w.Password,
		Database: cfg.DB.Postgres.Prefix + w.Name, SSLMode: w.SSLMode}
}

func ReadEndpoint(cfg *config.Config) Endpoint {
	r := cfg.DB.Postgres.Read

	return Endpoint{Name: "read", Host: r.Host, Port: r.Port, Username: r.Username, Password: r.Password,
		Database: cfg.DB.Postgres.Prefix + r.Name, SSLMode: r.SSLMode}
}

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	retries, wait := cfg.DB.Postgres.MaxRetry, time.Duration(cfg.DB.Postgres.RetryWaitTime)*time.Second

	return &Connection{
		Read:  Connect(ReadEndpoint(cfg), retries, wait),
		Write: Connect(WriteEndpoint(cfg), retries, wait),
	}
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Read == nil || c.Write == nil {
		return errNotConnected
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("ping write database: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("ping read database: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Write, c.Read} {
		if db != nil {
			errs = append(errs, db.Close())
		}
	}

	return errors.Join(errs...)
}

// Connect dials the endpoint, retrying up to retries times. It returns nil
// when every attempt fails.
func Connect(endpoint Endpoint, retries int, wait time.Duration) *sqlx.DB {
	logger := log.With().Str("name", endpoint.Name).Str("host", endpoint.Host).Str("database", endpoint.Database).Logger()

	for attempt := 1; attempt <= max(retries, 1); attempt++ {
		db, err := sqlx.Connect(driverName, endpoint.DSN(nil))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(wait)
	}

	logger.Error().Int("retries", retries).Msg("Giving up connecting to database")

	return nil
}
