package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/config"
)

// Open connects to the configured database and returns an ent SQL driver
// shared by every repository adapter.
func Open(cfg *config.Config, logger logrus.FieldLogger) (dialect.Driver, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}

	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	var (
		rawDB *sql.DB
		name  string
	)
	switch driver {
	case config.DriverPostgres:
		rawDB, err = sql.Open("postgres", dsn)
		name = dialect.Postgres
	case config.DriverPgx:
		rawDB, err = openPgx(cfg, dsn, logger)
		name = dialect.Postgres
	case config.DriverSQLite:
		rawDB, err = sql.Open("sqlite3", dsn)
		name = dialect.SQLite
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s db: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := prepare(ctx, rawDB, driver, cfg.Database.MaxOpenConns); err != nil {
		rawDB.Close()
		return nil, nil, err
	}

	var drv dialect.Driver = entsql.OpenDB(name, rawDB)
	// pgx traces through its own logger below.
	if cfg.Database.LogSQL && driver != config.DriverPgx {
		drv = dialect.Debug(drv, func(args ...any) {
			logger.WithField("component", "sql").Debug(args...)
		})
	}

	return drv, func() {
		_ = drv.Close()
	}, nil
}

func prepare(ctx context.Context, rawDB *sql.DB, driver string, maxOpen int) error {
	if driver == config.DriverSQLite {
		rawDB.SetMaxOpenConns(1)
		rawDB.SetMaxIdleConns(1)
	} else if maxOpen > 0 {
		rawDB.SetMaxOpenConns(maxOpen)
	}

	if err := rawDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s db: %w", driver, err)
	}
	if driver == config.DriverSQLite {
		if _, err := rawDB.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			return fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}
	return nil
}

func openPgx(cfg *config.Config, dsn string, logger logrus.FieldLogger) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}

	if cfg.Database.LogSQL {
		sqlLogger := logger.WithField("component", "pgx")
		connCfg.Tracer = &tracelog.TraceLog{
			Logger: tracelog.LoggerFunc(func(_ context.Context, lvl tracelog.LogLevel, msg string, data map[string]any) {
				entry := sqlLogger.WithFields(logrus.Fields(data))
				switch lvl {
				case tracelog.LogLevelError:
					entry.Error(msg)
				case tracelog.LogLevelWarn:
					entry.Warn(msg)
				default:
					entry.Debug(msg)
				}
			}),
			LogLevel: tracelog.LogLevelTrace,
		}
	}

	return stdlib.OpenDB(*connCfg), nil
}
