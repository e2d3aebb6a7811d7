package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/joseph-ayodele/request-ocr/internal/entity"
)

// PgxPool is the subset of *pgxpool.Pool the Postgres store uses.
type PgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

type pgStore struct {
	pool   PgxPool
	logger *slog.Logger
}

// NewPostgresStore builds a Store on a pgx pool.
func NewPostgresStore(pool PgxPool, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &pgStore{pool: pool, logger: logger}
}

func (s *pgStore) ListUnprocessed(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, pgSelectUnprocessed)
	if err != nil {
		s.logger.Error("error fetching unextracted pdf names", "error", err)
		return nil, dbError("list unprocessed documents", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		s.logger.Error("error fetching unextracted pdf names", "error", err)
		return nil, dbError("list unprocessed documents", err)
	}
	return names, nil
}

func (s *pgStore) MarkProcessed(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	return s.inTx(ctx, "mark documents processed", func(tx pgx.Tx) error {
		for _, name := range names {
			if _, err := tx.Exec(ctx, pgMarkProcessed, name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *pgStore) AddDocument(ctx context.Context, name string) error {
	if _, err := s.pool.Exec(ctx, pgAddDocument, name); err != nil {
		s.logger.Error("failed to add document", "document", name, "error", err)
		return dbError("add document", err)
	}
	return nil
}

func (s *pgStore) InsertBatch(ctx context.Context, records []entity.UsageRecord) error {
	if len(records) == 0 {
		return nil
	}
	return s.inTx(ctx, "insert usage batch", func(tx pgx.Tx) error {
		for _, r := range records {
			if _, err := tx.Exec(ctx, pgInsertUsage, usageArgs(r)...); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *pgStore) ListUsage(ctx context.Context, since time.Time) ([]entity.UsageRow, error) {
	rows, err := s.pool.Query(ctx, pgSelectUsageSince, since)
	if err != nil {
		return nil, dbError("list usage", err)
	}
	defer rows.Close()

	var out []entity.UsageRow
	for rows.Next() {
		var u entity.UsageRow
		if err := rows.Scan(usageScanDest(&u)...); err != nil {
			return nil, dbError("scan usage", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list usage", err)
	}
	return out, nil
}

func (s *pgStore) SaveBatch(ctx context.Context, records []entity.UsageRecord) (SaveResult, error) {
	return saveBatch(ctx, s, s, records, s.logger)
}

func (s *pgStore) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *pgStore) Close() { s.pool.Close() }

// inTx runs fn in one transaction, rolling back on error.
func (s *pgStore) inTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return dbError(op, err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.Warn("rollback failed", "op", op, "error", rbErr)
		}
		return dbError(op, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return dbError(op, err)
	}
	return nil
}

func usageScanDest(u *entity.UsageRow) []any {
	return []any{
		&u.ID, &u.ClientAccountID, &u.Name, &u.ReportID,
		&u.Company, &u.Country, &u.ServiceType, &u.Date, &u.EnteredRefNo,
		&u.Telephone, &u.CompanyRegNum, &u.Address, &u.Comments,
		&u.ActionTypeID, &u.IsProcessed, &u.TransactionSource, &u.StatusID,
		&u.CreatedAt,
	}
}
