package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/request-ocr/internal/entity"
	"github.com/joseph-ayodele/request-ocr/internal/repository"
)

// Service is a tiny façade over the usage repository that produces XLSX or CSV bytes.
type Service struct {
	usage  repository.UsageRepository
	logger *slog.Logger
}

func NewService(usage repository.UsageRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{usage: usage, logger: logger}
}

var headers = []string{
	"ID",
	"Client Account",
	"Name",
	"Report ID",
	"Company",
	"Country",
	"Service Type",
	"Date",
	"Entered Ref No",
	"Telephone",
	"Company Reg Num",
	"Address",
	"Comments",
	"Transaction Source",
	"Created At",
}

// csvRow is the flat CSV shape of a usage row.
type csvRow struct {
	ID                int64  `csv:"id"`
	ClientAccountID   string `csv:"client_account_id"`
	Name              string `csv:"name"`
	ReportID          int    `csv:"report_id"`
	Company           string `csv:"company"`
	Country           string `csv:"country"`
	ServiceType       string `csv:"service_type"`
	Date              string `csv:"date"`
	EnteredRefNo      string `csv:"entered_ref_no"`
	Telephone         string `csv:"telephone"`
	CompanyRegNum     string `csv:"company_reg_num"`
	Address           string `csv:"address"`
	Comments          string `csv:"comments"`
	TransactionSource string `csv:"transaction_source"`
	CreatedAt         string `csv:"created_at"`
}

func flatten(r entity.UsageRow) csvRow {
	return csvRow{
		ID:                r.ID,
		ClientAccountID:   r.ClientAccountID,
		Name:              r.Name,
		ReportID:          r.ReportID,
		Company:           entity.StrOrEmpty(r.Company),
		Country:           entity.StrOrEmpty(r.Country),
		ServiceType:       entity.StrOrEmpty(r.ServiceType),
		Date:              entity.StrOrEmpty(r.Date),
		EnteredRefNo:      entity.StrOrEmpty(r.EnteredRefNo),
		Telephone:         entity.StrOrEmpty(r.Telephone),
		CompanyRegNum:     entity.StrOrEmpty(r.CompanyRegNum),
		Address:           entity.StrOrEmpty(r.Address),
		Comments:          entity.StrOrEmpty(r.Comments),
		TransactionSource: r.TransactionSource,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ExportUsageCSV returns the usage rows created since the given time as CSV.
func (s *Service) ExportUsageCSV(ctx context.Context, since time.Time) ([]byte, error) {
	rows, err := s.usage.ListUsage(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("query usage: %w", err)
	}
	out := make([]csvRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, flatten(r))
	}
	b, err := gocsv.MarshalBytes(&out)
	if err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	s.logger.Info("export.csv.ok", "rows", len(rows))
	return b, nil
}

// ExportUsageXLSX returns the usage rows created since the given time as an XLSX workbook.
func (s *Service) ExportUsageXLSX(ctx context.Context, since time.Time) ([]byte, error) {
	start := time.Now()

	rows, err := s.usage.ListUsage(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("query usage: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Usage"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		c := flatten(r)
		values := []any{
			c.ID, c.ClientAccountID, c.Name, c.ReportID, c.Company, c.Country,
			c.ServiceType, c.Date, c.EnteredRefNo, c.Telephone, c.CompanyRegNum,
			c.Address, truncate(c.Comments, 500), c.TransactionSource, c.CreatedAt,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(sheet, "E", "E", 28) // company
	_ = f.SetColWidth(sheet, "L", "L", 48) // address
	_ = f.SetColWidth(sheet, "M", "M", 60) // comments

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
