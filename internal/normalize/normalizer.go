// Package normalize turns raw extracted fields into the usage record stored in the database.
package normalize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/request-ocr/constants"
	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/entity"
	"github.com/joseph-ayodele/request-ocr/internal/parse"
)

// Normalizer applies date formatting, speed classification, country lookup and
// address cleanup, then validates the result.
type Normalizer struct {
	schema *jsonschema.Schema
	logger *slog.Logger
}

func NewNormalizer(logger *slog.Logger) (*Normalizer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	schema, err := compileSchema(BuildUsageJSONSchema())
	if err != nil {
		return nil, err
	}
	return &Normalizer{schema: schema, logger: logger}, nil
}

// Normalize builds the usage record for document from its extracted fields.
// An absent date is stored as NULL; a present but malformed date fails the document.
func (n *Normalizer) Normalize(document, blobName string, f parse.Fields) (entity.UsageRecord, error) {
	rec := entity.UsageRecord{
		DocumentName:  document,
		BlobName:      blobName,
		Company:       entity.StrPtr(f.CompanyName),
		EnteredRefNo:  entity.StrPtr(f.EulerNumber),
		Telephone:     f.Telephone,
		CompanyRegNum: entity.StrPtr(f.RegistrationNumber),
		Comments:      entity.StrPtr(f.Report),
	}
	if rec.Telephone == "" {
		rec.Telephone = constants.TelephonePlaceholder
	}

	if speed, ok := ClassifySpeed(f.SpeedToken); ok {
		s := speed.String()
		rec.ServiceType = &s
	} else if f.SpeedToken != "" {
		n.logger.Debug("unrecognized speed token", "document", document, "token", f.SpeedToken)
	}

	multi, single := CleanAddress(f.Address, f.CompanyName)
	rec.Address = entity.StrPtr(single)
	if multi != "" {
		rec.Country = entity.StrPtr(FindCountry(strings.Split(multi, "\n")))
	}

	if f.RawDate != "" {
		date, err := FormatDate(f.RawDate)
		if err != nil {
			return entity.UsageRecord{}, common.NewAppError(common.CodeDateFormat, "format letter date", err)
		}
		rec.Date = &date
	}

	if err := n.Validate(rec); err != nil {
		return entity.UsageRecord{}, err
	}
	return rec, nil
}

// Validate checks rec against the usage schema.
func (n *Normalizer) Validate(rec entity.UsageRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := validateJSON(n.schema, data); err != nil {
		return common.NewAppError(common.CodeValidation, "usage record "+rec.DocumentName, fmt.Errorf("%w: %v", common.ErrValidation, err))
	}
	return nil
}
