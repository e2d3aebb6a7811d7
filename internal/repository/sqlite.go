package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/request-ocr/internal/entity"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

type sqlStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore builds a Store on a database/sql handle opened with the
// modernc "sqlite" driver.
func NewSQLiteStore(db *sql.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &sqlStore{db: db, logger: logger}
}

func (s *sqlStore) ListUnprocessed(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, liteSelectUnprocessed)
	if err != nil {
		s.logger.Error("error fetching unextracted pdf names", "error", err)
		return nil, dbError("list unprocessed documents", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dbError("scan document name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list unprocessed documents", err)
	}
	return names, nil
}

func (s *sqlStore) MarkProcessed(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	return s.inTx(ctx, "mark documents processed", func(tx *sql.Tx) error {
		for _, name := range names {
			if _, err := tx.ExecContext(ctx, liteMarkProcessed, name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *sqlStore) AddDocument(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, liteAddDocument, name); err != nil {
		return dbError("add document", err)
	}
	return nil
}

func (s *sqlStore) InsertBatch(ctx context.Context, records []entity.UsageRecord) error {
	if len(records) == 0 {
		return nil
	}
	return s.inTx(ctx, "insert usage batch", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, liteInsertUsage)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, r := range records {
			if _, err := stmt.ExecContext(ctx, usageArgs(r)...); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *sqlStore) ListUsage(ctx context.Context, since time.Time) ([]entity.UsageRow, error) {
	rows, err := s.db.QueryContext(ctx, liteSelectUsageSince, since.UTC().Format(sqliteTimeLayout))
	if err != nil {
		return nil, dbError("list usage", err)
	}
	defer rows.Close()

	var out []entity.UsageRow
	for rows.Next() {
		var (
			u       entity.UsageRow
			created string
		)
		dest := usageScanDest(&u)
		dest[len(dest)-1] = &created
		if err := rows.Scan(dest...); err != nil {
			return nil, dbError("scan usage", err)
		}
		if u.CreatedAt, err = parseSQLiteTime(created); err != nil {
			return nil, dbError("scan usage", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list usage", err)
	}
	return out, nil
}

func (s *sqlStore) SaveBatch(ctx context.Context, records []entity.UsageRecord) (SaveResult, error) {
	return saveBatch(ctx, s, s, records, s.logger)
}

func (s *sqlStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *sqlStore) Close() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("failed to close sqlite database", "error", err)
	}
}

func (s *sqlStore) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(op, err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Warn("rollback failed", "op", op, "error", rbErr)
		}
		return dbError(op, err)
	}
	if err := tx.Commit(); err != nil {
		return dbError(op, err)
	}
	return nil
}

// parseSQLiteTime accepts both the CURRENT_TIMESTAMP text form and the
// RFC 3339 form database/sql produces when the driver returns a time.Time.
func parseSQLiteTime(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, sqliteTimeLayout} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", v)
}
