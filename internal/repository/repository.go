package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/request-ocr/constants"
	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/entity"
)

// DocumentRepository reads and flags the request PDFs tracked in pdf_documents.
type DocumentRepository interface {
	ListUnprocessed(ctx context.Context) ([]string, error)
	MarkProcessed(ctx context.Context, names []string) error
	AddDocument(ctx context.Context, name string) error
}

// UsageRepository writes and reads usage rows.
type UsageRepository interface {
	InsertBatch(ctx context.Context, records []entity.UsageRecord) error
	ListUsage(ctx context.Context, since time.Time) ([]entity.UsageRow, error)
}

// Store is everything the pipeline needs from the database.
type Store interface {
	DocumentRepository
	UsageRepository
	SaveBatch(ctx context.Context, records []entity.UsageRecord) (SaveResult, error)
	Ping(ctx context.Context) error
	Close()
}

// SaveResult reports what SaveBatch committed.
type SaveResult struct {
	Inserted int
	Marked   []string
}

// saveBatch inserts every record in one transaction and, once that is
// committed, flags the documents the records came from in a second one.
// When the insert fails no document is flagged.
func saveBatch(ctx context.Context, usage UsageRepository, docs DocumentRepository, records []entity.UsageRecord, logger *slog.Logger) (SaveResult, error) {
	if len(records) == 0 {
		return SaveResult{}, nil
	}
	if err := usage.InsertBatch(ctx, records); err != nil {
		logger.Error("error saving data to table", "records", len(records), "error", err)
		return SaveResult{}, err
	}

	names := documentNames(records)
	if err := docs.MarkProcessed(ctx, names); err != nil {
		logger.Error("error flagging documents as extracted", "documents", len(names), "error", err)
		return SaveResult{Inserted: len(records)}, err
	}
	logger.Info("usage batch saved", "records", len(records), "documents", len(names))
	return SaveResult{Inserted: len(records), Marked: names}, nil
}

// documentNames returns the distinct document names of records, in order.
func documentNames(records []entity.UsageRecord) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.DocumentName]; ok || r.DocumentName == "" {
			continue
		}
		seen[r.DocumentName] = struct{}{}
		out = append(out, r.DocumentName)
	}
	return out
}

// usageArgs returns the 16 column values of the insert, in column order.
func usageArgs(r entity.UsageRecord) []any {
	return []any{
		constants.ClientAccountID,
		constants.AccountName,
		constants.ReportID,
		r.Company,
		r.Country,
		r.ServiceType,
		r.Date,
		r.EnteredRefNo,
		r.Telephone,
		r.CompanyRegNum,
		r.Address,
		r.Comments,
		constants.ActionTypeID,
		constants.UsageIsProcessed,
		constants.TransactionSource,
		constants.StatusID,
	}
}

func dbError(message string, err error) error {
	return common.NewAppError(common.CodeDatabase, message, fmt.Errorf("%w: %w", common.ErrDatabase, err))
}
