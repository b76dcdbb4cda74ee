package database

//nolint:revive
import (
	"cafe/config"
	"cafe/shared/constant"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10

	// a single writer keeps sqlite away from SQLITE_BUSY under concurrent requests
	sqliteMaxOpenConnection = 1
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

func init() {
	sqlx.BindDriver(constant.DriverSQLite, sqlx.QUESTION)
}

// Connection splits read and write traffic. With sqlite both point at the same handle.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func (c *Connection) Close() error {
	if c == nil {
		return nil
	}

	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

func New(config *config.Config) *Connection {
	conn, err := Open(config)
	if err != nil {
		log.Fatal().Err(err).Str("driver", config.DB.Driver).Msg("Failed to open database")
	}

	return conn
}

// Open connects using the configured driver, retrying DB_MAX_RETRY times.
func Open(config *config.Config) (*Connection, error) {
	switch config.DB.Driver {
	case constant.DriverSQLite:
		db, err := connect(
			"sqlite",
			constant.DriverSQLite,
			SQLiteDSN(config.DB.SQLite.File, config.DB.SQLite.BusyTimeoutMs),
			config.DB.MaxRetry,
			config.DB.RetryWaitTime,
		)
		if err != nil {
			return nil, err
		}

		db.SetMaxOpenConns(sqliteMaxOpenConnection)

		return &Connection{Read: db, Write: db}, nil
	case constant.DriverPostgres:
		write, err := connect("write", constant.DriverPostgres, PostgresWriteDSN(config), config.DB.MaxRetry, config.DB.RetryWaitTime)
		if err != nil {
			return nil, err
		}

		read, err := connect("read", constant.DriverPostgres, PostgresReadDSN(config), config.DB.MaxRetry, config.DB.RetryWaitTime)
		if err != nil {
			_ = write.Close()

			return nil, err
		}

		for _, db := range []*sqlx.DB{read, write} {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
		}

		return &Connection{Read: read, Write: write}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, config.DB.Driver)
	}
}

// SQLiteDSN builds a modernc DSN with busy_timeout and WAL journaling applied per connection.
func SQLiteDSN(file string, busyTimeoutMs int) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", file, busyTimeoutMs)
}

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func PostgresWriteDSN(config *config.Config) string {
	write := config.DB.Postgres.Write

	return postgresDSN(write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode)
}

func PostgresReadDSN(config *config.Config) string {
	read := config.DB.Postgres.Read

	return postgresDSN(read.Username, read.Password, read.Host, read.Port, getDBName(config, read.Name), read.SSLMode)
}

func postgresDSN(username, password, host, port, dbName, sslMode string) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     dbName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}

	return dsn.String()
}

func connect(name, driver, dsn string, maxRetry, waitTime int) (*sqlx.DB, error) {
	var err error

	for retry := range max(maxRetry, 1) {
		var db *sqlx.DB

		db, err = sqlx.Connect(driver, dsn)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("driver", driver).
				Msg("Connected to database")

			return db, nil
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("driver", driver).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("connecting to %s database (%s): %w", driver, name, err)
}

// IsUniqueViolation reports whether err came from a unique or primary key constraint.
func IsUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()

		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
