package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	// Register the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/request-ocr/internal/common"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

type Config struct {
	Driver           string // common.DriverPostgres | common.DriverSQLite
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
	AutoMigrate      bool
}

// ConfigFrom maps the application database settings onto a repository Config.
func ConfigFrom(c common.DatabaseConfig) Config {
	return Config{
		Driver:           c.Driver,
		DSN:              c.DSN,
		MaxConns:         c.MaxConns,
		MinConns:         c.MinConns,
		MaxConnLifetime:  c.MaxConnLifetime,
		MaxConnIdleTime:  c.MaxConnIdleTime,
		DialTimeout:      c.DialTimeout,
		StatementTimeout: c.StatementTimeout,
		AutoMigrate:      c.AutoMigrate,
	}
}

// Open connects to the configured database, applies migrations when asked and returns a Store.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch cfg.Driver {
	case common.DriverSQLite:
		return openSQLite(ctx, cfg, logger)
	case common.DriverPostgres, "":
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, common.NewAppError(common.CodeConfigInvalid, fmt.Sprintf("unknown database driver %q", cfg.Driver), common.ErrInvalidInput)
	}
}

func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	logger.Info("connecting to database", "driver", common.DriverPostgres)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, connectionError(err)
	}

	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	pc.MinConns = cfg.MinConns
	if cfg.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "request-ocr"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprintf("%d", cfg.StatementTimeout.Milliseconds())
	}

	dialCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, connectionError(err)
	}
	if err := pool.Ping(dialCtx); err != nil {
		pool.Close()
		logger.Error("database connection failed", "error", err)
		return nil, connectionError(err)
	}

	if cfg.AutoMigrate {
		db := stdlib.OpenDBFromPool(pool)
		err := Migrate(ctx, db, common.DriverPostgres, logger)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, err
		}
	}

	logger.Info("successfully connected to database")
	return NewPostgresStore(pool, logger), nil
}

func openSQLite(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = ":memory:"
	}
	logger.Info("connecting to database", "driver", common.DriverSQLite, "dsn", dsn)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, connectionError(err)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, connectionError(err)
	}
	if cfg.AutoMigrate {
		if err := Migrate(ctx, db, common.DriverSQLite, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return NewSQLiteStore(db, logger), nil
}

// Migrate applies the embedded goose migrations for driver.
func Migrate(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger) error {
	dialect := goose.DialectPostgres
	dir := "migrations/postgres"
	if driver == common.DriverSQLite {
		dialect = goose.DialectSQLite3
		dir = "migrations/sqlite"
	}
	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		logger.Error("migration failed", "error", err)
		return dbError("apply migrations", err)
	}
	for _, r := range results {
		logger.Info("migration applied", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}
	return nil
}

// HealthCheck pings the store, bounded by timeout when positive.
func HealthCheck(ctx context.Context, store Store, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := store.Ping(ctx); err != nil {
		logger.Error("database ping failed", "error", err)
		return connectionError(err)
	}
	logger.Debug("database ping successful")
	return nil
}

func connectionError(err error) error {
	return common.NewAppError(common.CodeConnectionFailure, "database unreachable", fmt.Errorf("%w: %w", common.ErrConnection, err))
}
