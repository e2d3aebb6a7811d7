package entity

import "time"

// UsageRecord is the normalized form of one request letter, ready for the Usage table.
// Nil pointers are stored as NULL.
type UsageRecord struct {
	DocumentName string `json:"-"`
	BlobName     string `json:"-"`

	Company       *string `json:"company"`
	Country       *string `json:"country"`
	ServiceType   *string `json:"service_type"`
	Date          *string `json:"date"`
	EnteredRefNo  *string `json:"entered_ref_no"`
	Telephone     string  `json:"telephone"`
	CompanyRegNum *string `json:"company_reg_num"`
	Address       *string `json:"address"`
	Comments      *string `json:"comments"`
}

// UsageRow is a stored usage row, read back for exports.
type UsageRow struct {
	ID                int64     `csv:"id"`
	ClientAccountID   string    `csv:"client_account_id"`
	Name              string    `csv:"name"`
	ReportID          int       `csv:"report_id"`
	Company           *string   `csv:"company"`
	Country           *string   `csv:"country"`
	ServiceType       *string   `csv:"service_type"`
	Date              *string   `csv:"date"`
	EnteredRefNo      *string   `csv:"entered_ref_no"`
	Telephone         *string   `csv:"telephone"`
	CompanyRegNum     *string   `csv:"company_reg_num"`
	Address           *string   `csv:"address"`
	Comments          *string   `csv:"comments"`
	ActionTypeID      int       `csv:"action_type_id"`
	IsProcessed       int       `csv:"is_processed"`
	TransactionSource string    `csv:"transaction_source"`
	StatusID          int       `csv:"status_id"`
	CreatedAt         time.Time `csv:"created_at"`
}

// StrPtr returns nil for an empty string, otherwise a pointer to s.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StrOrEmpty dereferences p, returning "" for nil.
func StrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
