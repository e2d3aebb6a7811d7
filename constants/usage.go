package constants

// Fixed values written into every usage row. They identify the OCR feed
// rather than anything read from the request letter.
const (
	ClientAccountID   = "EDCTEST"
	AccountName       = "EDC"
	ReportID          = 123
	ActionTypeID      = 1
	UsageIsProcessed  = 0
	TransactionSource = "OCR"
	StatusID          = 1
)

// TelephonePlaceholder is stored when no telephone number was found.
const TelephonePlaceholder = "Telephone: None"

// DateLayout is the layout used for the usage Date column (dd/mm/yyyy).
const DateLayout = "02/01/2006"
