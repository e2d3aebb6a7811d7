package repository

import "strings"

const usageColumns = `client_account_id, name, report_id, company, country, service_type,
	request_date, entered_ref_no, telephone, company_reg_num, address, comments,
	action_type_id, is_processed, transaction_source, status_id`

const selectUsageColumns = `id, ` + usageColumns + `, created_at`

// Postgres statements.
const (
	pgSelectUnprocessed = `SELECT pdf_name FROM pdf_documents WHERE is_extracted = FALSE ORDER BY pdf_name`
	pgMarkProcessed     = `UPDATE pdf_documents SET is_extracted = TRUE WHERE pdf_name = $1`
	pgAddDocument       = `INSERT INTO pdf_documents (pdf_name) VALUES ($1) ON CONFLICT (pdf_name) DO NOTHING`
	pgInsertUsage       = `INSERT INTO usage_records (` + usageColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	pgSelectUsageSince = `SELECT ` + selectUsageColumns + ` FROM usage_records WHERE created_at >= $1 ORDER BY id`
)

// SQLite statements.
var (
	liteSelectUnprocessed = `SELECT pdf_name FROM pdf_documents WHERE is_extracted = 0 ORDER BY pdf_name`
	liteMarkProcessed     = `UPDATE pdf_documents SET is_extracted = 1 WHERE pdf_name = ?`
	liteAddDocument       = `INSERT OR IGNORE INTO pdf_documents (pdf_name) VALUES (?)`
	liteInsertUsage       = `INSERT INTO usage_records (` + usageColumns + `)
	VALUES (` + placeholders(16) + `)`
	liteSelectUsageSince = `SELECT ` + selectUsageColumns + ` FROM usage_records WHERE created_at >= ? ORDER BY id`
)

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
